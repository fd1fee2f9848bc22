package entities

import (
	"time"

	"github.com/google/uuid"
)

// Offset is an additive, one-shot, permanent distance adjustment. A negative
// distance is a penalty (forfeiting a challenge writes one). Offsets have no
// validity window and are never mutated after creation.
type Offset struct {
	ID          uuid.UUID  `json:"id"`
	Distance    float64    `json:"distance"`
	CreatorID   uuid.UUID  `json:"creatorId"`
	ReceiverID  uuid.UUID  `json:"receiverId"`
	ChallengeID *uuid.UUID `json:"challengeId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CreateOffsetInput is the payload for a new ledger offset
type CreateOffsetInput struct {
	Distance    float64    `json:"distance"`
	CreatorID   uuid.UUID  `json:"creatorId"`
	ReceiverID  uuid.UUID  `json:"receiverId"`
	ChallengeID *uuid.UUID `json:"challengeId"`
}
