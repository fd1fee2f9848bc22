package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Modifier is a multiplicative, time-scoped distance adjustment.
// A nil ReceiverID means the modifier applies to every team. A set
// ChallengeID ties the modifier to distance ridden for that challenge; the
// pause modifier installed while a pause_distance challenge is active is the
// canonical example. An invalid Start means "since the beginning"; an
// invalid End means the window is still open.
//
// Entries are immutable once written, with one exception: a null End may be
// set exactly once to close the window.
type Modifier struct {
	ID          uuid.UUID  `json:"id"`
	Multiplier  float64    `json:"multiplier"`
	CreatorID   uuid.UUID  `json:"creatorId"`
	ReceiverID  *uuid.UUID `json:"receiverId,omitempty"`
	ChallengeID *uuid.UUID `json:"challengeId,omitempty"`
	Start       null.Time  `json:"start,omitempty"`
	End         null.Time  `json:"end,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ActiveAt reports whether the modifier window covers t
func (m *Modifier) ActiveAt(t time.Time) bool {
	if m.Start.Valid && t.Before(m.Start.Time) {
		return false
	}
	if m.End.Valid && !t.Before(m.End.Time) {
		return false
	}
	return true
}

// AppliesTo reports whether the modifier targets the given team
func (m *Modifier) AppliesTo(teamID uuid.UUID) bool {
	return m.ReceiverID == nil || *m.ReceiverID == teamID
}

// CreateModifierInput is the payload for a new ledger modifier
type CreateModifierInput struct {
	Multiplier  float64    `json:"multiplier"`
	CreatorID   uuid.UUID  `json:"creatorId"`
	ReceiverID  *uuid.UUID `json:"receiverId"`
	ChallengeID *uuid.UUID `json:"challengeId"`
	Start       null.Time  `json:"start"`
	End         null.Time  `json:"end"`
}

// TimeWindow is a half-open interval [Start, End); an invalid End means the
// window is still open.
type TimeWindow struct {
	Start null.Time
	End   null.Time
}

// Contains reports whether t falls inside the window
func (w TimeWindow) Contains(t time.Time) bool {
	if w.Start.Valid && t.Before(w.Start.Time) {
		return false
	}
	if w.End.Valid && !t.Before(w.End.Time) {
		return false
	}
	return true
}

// DistanceWindow attributes a raw distance figure to the half-open time
// interval [Start, End) during which it was ridden.
type DistanceWindow struct {
	Start    time.Time
	End      time.Time
	Distance float64
}
