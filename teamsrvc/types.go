package teamsrvc

import (
	"time"

	"github.com/google/uuid"
)

// Team is a participant of one challenge. The engine only ever needs to
// confirm membership; authentication lives here too because the API key
// hash is part of the same record.
type Team struct {
	ID          uuid.UUID
	ChallengeID uuid.UUID
	Name        string
	CreatedAt   time.Time
}
