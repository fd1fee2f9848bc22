package models

import (
	"time"

	"github.com/google/uuid"
)

type Challenge struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string     `gorm:"type:varchar(200);not null"`
	Description   string     `gorm:"type:text;not null"`
	Token         string     `gorm:"type:varchar(36);not null;uniqueIndex"`
	PauseDistance bool       `gorm:"not null;default:true"`
	Latitude      float64    `gorm:"not null;default:0"`
	Longitude     float64    `gorm:"not null;default:0"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	TeamID        *uuid.UUID `gorm:"type:uuid;index"`
	Start         *time.Time
	End           *time.Time
	CreatedAt     time.Time
}
