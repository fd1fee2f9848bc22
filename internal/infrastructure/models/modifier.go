package models

import (
	"time"

	"github.com/google/uuid"
)

type Modifier struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Multiplier  float64    `gorm:"not null"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null"`
	ReceiverID  *uuid.UUID `gorm:"type:uuid;index"`
	ChallengeID *uuid.UUID `gorm:"type:uuid;index"`
	Start       *time.Time
	End         *time.Time
	CreatedAt   time.Time
}

type Offset struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Distance    float64    `gorm:"not null"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null"`
	ReceiverID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ChallengeID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}
