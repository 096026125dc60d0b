package teamsrvc

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

type teamRow struct {
	ID          string `dynamo:"id,hash"` // Primary key
	ChallengeID string `dynamo:"challenge_id"`
	Name        string `dynamo:"name"`
	KeyHash     []byte `dynamo:"key_hash"` // bcrypt of the team api key
	UnixTime    int64  `dynamo:"unix_timestamp"`
}

// DynamoDbTeamTable stores team records in DynamoDB.
type DynamoDbTeamTable struct {
	ddbClient *dynamodb.Client
	tableName string
	teamTable *dynamo.Table
}

func NewDynamoDbTeamTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbTeamTable {
	ddb := &DynamoDbTeamTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.teamTable = &table

	return ddb
}

func (ddb *DynamoDbTeamTable) Save(ctx context.Context, team *teamRow) error {
	return ddb.teamTable.Put(team).Run(ctx)
}

func (ddb *DynamoDbTeamTable) Get(ctx context.Context, teamID uuid.UUID) (*teamRow, error) {
	var row teamRow
	err := ddb.teamTable.Get("id", teamID.String()).One(ctx, &row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func rowFromTeam(team *Team, keyHash []byte) *teamRow {
	return &teamRow{
		ID:          team.ID.String(),
		ChallengeID: team.ChallengeID.String(),
		Name:        team.Name,
		KeyHash:     keyHash,
		UnixTime:    team.CreatedAt.Unix(),
	}
}

func (r *teamRow) toTeam() (*Team, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, err
	}
	challengeID, err := uuid.Parse(r.ChallengeID)
	if err != nil {
		return nil, err
	}
	return &Team{
		ID:          id,
		ChallengeID: challengeID,
		Name:        r.Name,
		CreatedAt:   time.Unix(r.UnixTime, 0).UTC(),
	}, nil
}
