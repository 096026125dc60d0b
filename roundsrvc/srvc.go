package roundsrvc

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// RoundSrvc is the read-only registry of round configuration. The engine
// never writes through it; SaveRound exists for the admin importer.
type RoundSrvc struct {
	ddbClient *dynamodb.Client
	tableName string
}

func NewRoundSrvc(ddbClient *dynamodb.Client, tableName string) *RoundSrvc {
	return &RoundSrvc{
		ddbClient: ddbClient,
		tableName: tableName,
	}
}

func (s *RoundSrvc) GetRound(ctx context.Context, roundID uuid.UUID) (*Round, error) {
	keyCond := expression.Key("pk").Equal(expression.Value(roundPk(roundID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		errMsg := fmt.Errorf("failed to build round query: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	c := newRoundConstructor(roundID)
	var lastKey map[string]types.AttributeValue
	for {
		out, err := s.ddbClient.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			errMsg := fmt.Errorf("failed to query round %s: %w", roundID, err)
			return nil, newErrInternalSE().SetDebug(errMsg)
		}
		for _, item := range out.Items {
			if err := c.applyDdbItem(item); err != nil {
				return nil, newErrInternalSE().SetDebug(err)
			}
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	round, err := c.result()
	if err != nil {
		return nil, newErrRoundNotFound(roundID).SetDebug(err)
	}
	return round, nil
}

// SaveRound writes the full row family for a round. Used by cmd/admin only.
func (s *RoundSrvc) SaveRound(ctx context.Context, round *Round) error {
	rows := make([]any, 0, len(round.TaskTypes)+1)
	rows = append(rows, ddbDetailsRow{
		Pk:          roundPk(round.ID),
		Sk:          detailsSk,
		ChallengeID: round.ChallengeID.String(),
		Published:   round.Published,
		ClaimByType: round.ClaimByType,
		StartsAt:    round.StartsAt.Unix(),
		EndsAt:      round.EndsAt.Unix(),
	})
	for _, t := range round.TaskTypes {
		rows = append(rows, ddbTaskTypeRow{
			Pk:             roundPk(round.ID),
			Sk:             taskTypeSk(t.Code),
			Code:           t.Code,
			NTasks:         t.NTasks,
			Score:          t.Score,
			TimeToSolveMin: t.TimeToSolveMin,
			GenUrl:         t.GenUrl,
			GenSecret:      t.GenSecret,
			GenSettings:    t.GenSettings,
		})
	}

	for _, row := range rows {
		item, err := attributevalue.MarshalMap(row)
		if err != nil {
			return fmt.Errorf("failed to marshal round row: %w", err)
		}
		_, err = s.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.tableName),
			Item:      item,
		})
		if err != nil {
			return fmt.Errorf("failed to put round row: %w", err)
		}
	}
	return nil
}
