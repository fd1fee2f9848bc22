package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ChallengeStatus is the lifecycle state of a challenge.
// Transitions are monotonic: AVAILABLE -> ACTIVE -> {COMPLETED, FORFEITED}.
type ChallengeStatus string

const (
	ChallengeAvailable ChallengeStatus = "available"
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeForfeited ChallengeStatus = "forfeited"
)

// Terminal reports whether no further transition is allowed
func (s ChallengeStatus) Terminal() bool {
	return s == ChallengeCompleted || s == ChallengeForfeited
}

// Challenge is a geographically anchored task a team can attempt.
// Token is the identifying secret printed at the challenge site; a team must
// supply it on activation, which is what proves physical presence.
type Challenge struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Token         string          `json:"-"`
	PauseDistance bool            `json:"pauseDistance"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	Status        ChallengeStatus `json:"status"`
	TeamID        *uuid.UUID      `json:"teamId,omitempty"`
	Start         null.Time       `json:"start,omitempty"`
	End           null.Time       `json:"end,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateChallengeInput is the admin payload for seeding a challenge
type CreateChallengeInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PauseDistance bool    `json:"pauseDistance"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}
