package roundsrvc

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type roundConstructor struct {
	round      *Round
	sawDetails bool
}

func newRoundConstructor(roundID uuid.UUID) *roundConstructor {
	return &roundConstructor{
		round: &Round{ID: roundID},
	}
}

func (c *roundConstructor) applyDdbItem(item map[string]types.AttributeValue) error {
	skRaw, ok := item["sk"]
	if !ok {
		return fmt.Errorf("sk not found in item")
	}
	sk := skRaw.(*types.AttributeValueMemberS).Value

	if sk == detailsSk {
		ddbr := ddbDetailsRow{}
		err := attributevalue.UnmarshalMap(item, &ddbr)
		if err != nil {
			return fmt.Errorf("failed to unmarshal details item: %w", err)
		}

		challengeID, err := uuid.Parse(ddbr.ChallengeID)
		if err != nil {
			return fmt.Errorf("failed to parse challenge id: %w", err)
		}

		c.round.ChallengeID = challengeID
		c.round.Published = ddbr.Published
		c.round.ClaimByType = ddbr.ClaimByType
		c.round.StartsAt = time.Unix(ddbr.StartsAt, 0).UTC()
		c.round.EndsAt = time.Unix(ddbr.EndsAt, 0).UTC()
		c.sawDetails = true
	} else if strings.HasPrefix(sk, taskTypeSkPref) {
		ddbr := ddbTaskTypeRow{}
		err := attributevalue.UnmarshalMap(item, &ddbr)
		if err != nil {
			return fmt.Errorf("failed to unmarshal task type item: %w", err)
		}

		c.round.TaskTypes = append(c.round.TaskTypes, TaskType{
			Code:           ddbr.Code,
			NTasks:         ddbr.NTasks,
			Score:          ddbr.Score,
			TimeToSolveMin: ddbr.TimeToSolveMin,
			GenUrl:         ddbr.GenUrl,
			GenSecret:      ddbr.GenSecret,
			GenSettings:    ddbr.GenSettings,
		})
	}
	// unknown sk prefixes are skipped so new row kinds can be added later

	return nil
}

func (c *roundConstructor) result() (*Round, error) {
	if !c.sawDetails {
		return nil, fmt.Errorf("round %s has no details row", c.round.ID)
	}
	return c.round, nil
}
