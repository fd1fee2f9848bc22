package models

import (
	"time"

	"github.com/google/uuid"
)

type GpxUpload struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamID     uuid.UUID `gorm:"type:uuid;not null;index"`
	UploadedAt time.Time `gorm:"not null"`
	GpxData    string    `gorm:"type:text;not null"`
}

type GpxCleanup struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	GpxUploadID          uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalDistance        float64   `gorm:"not null"`
	TotalTime            float64   `gorm:"not null"`
	AverageSpeed         float64   `gorm:"not null"`
	MaxSpeed             float64   `gorm:"not null"`
	MinSpeed             float64   `gorm:"not null"`
	ScoredDistance       float64   `gorm:"not null"`
	PrunedDistanceSpeed  float64   `gorm:"not null"`
	PrunedDistancePaused float64   `gorm:"not null"`
	TrackStart           time.Time `gorm:"not null"`
	TrackEnd             time.Time `gorm:"not null"`
	CreatedAt            time.Time
}
