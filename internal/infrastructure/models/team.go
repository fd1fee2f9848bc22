package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Members    string    `gorm:"type:text;not null"` // JSON array of member names
	Color      string    `gorm:"type:varchar(20);not null"`
	SecretHash string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
