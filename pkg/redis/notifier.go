package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScorecardChannel is the pub/sub channel scoreboard watchers subscribe to.
// The core only announces "scorecard for team X changed"; how a client gets
// the update (polling, push) is the transport's business.
const ScorecardChannel = "scorecard:changed"

// ScorecardEvent is the published payload
type ScorecardEvent struct {
	TeamID    uuid.UUID `json:"teamId"`
	ChangedAt time.Time `json:"changedAt"`
}

// Notifier publishes scorecard change events over Redis pub/sub
type Notifier struct{}

// NewNotifier creates a new notifier backed by the package client
func NewNotifier() *Notifier {
	return &Notifier{}
}

// ScorecardChanged announces that a team's scorecard was recomputed
func (n *Notifier) ScorecardChanged(ctx context.Context, teamID uuid.UUID) error {
	payload, err := json.Marshal(ScorecardEvent{
		TeamID:    teamID,
		ChangedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	return Publish(ctx, ScorecardChannel, payload)
}
