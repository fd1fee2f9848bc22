package models

import (
	"time"

	"github.com/google/uuid"
)

type Scorecard struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamID              uuid.UUID `gorm:"type:uuid;not null;index:idx_scorecard_team_created,priority:1"`
	ChallengesCompleted int       `gorm:"not null;default:0"`
	DistanceTraveled    float64   `gorm:"not null;default:0"`
	DistanceEarned      float64   `gorm:"not null;default:0"`
	CreatedAt           time.Time `gorm:"index:idx_scorecard_team_created,priority:2"`
}
