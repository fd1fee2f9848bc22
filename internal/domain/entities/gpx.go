package entities

import (
	"time"

	"github.com/google/uuid"
)

// TrackPoint is one parsed GPS sample from an uploaded trace
type TrackPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Time      time.Time `json:"time"`
}

// GpxUpload is the raw trace a team submitted, kept verbatim for audit
type GpxUpload struct {
	ID         uuid.UUID `json:"id"`
	TeamID     uuid.UUID `json:"teamId"`
	UploadedAt time.Time `json:"uploadedAt"`
	GpxData    string    `json:"-"`
}

// GpxCleanup is the processed result of one upload. Distances are km,
// durations seconds, speeds km/h.
//
// ScoredDistance is what counts toward the competition: TotalDistance minus
// segments pruned for implausible speed (PrunedDistanceSpeed) and segments
// ridden inside a pause window (PrunedDistancePaused). The three prune
// figures always sum back to TotalDistance.
type GpxCleanup struct {
	ID                   uuid.UUID `json:"id"`
	GpxUploadID          uuid.UUID `json:"gpxUploadId"`
	TotalDistance        float64   `json:"totalDistance"`
	TotalTime            float64   `json:"totalTime"`
	AverageSpeed         float64   `json:"averageSpeed"`
	MaxSpeed             float64   `json:"maxSpeed"`
	MinSpeed             float64   `json:"minSpeed"`
	ScoredDistance       float64   `json:"scoredDistance"`
	PrunedDistanceSpeed  float64   `json:"prunedDistanceSpeed"`
	PrunedDistancePaused float64   `json:"prunedDistancePaused"`
	TrackStart           time.Time `json:"trackStart"`
	TrackEnd             time.Time `json:"trackEnd"`
	CreatedAt            time.Time `json:"createdAt"`
}

// UploadWithCleanup pairs an upload with its processing result
type UploadWithCleanup struct {
	Upload  *GpxUpload  `json:"upload"`
	Cleanup *GpxCleanup `json:"cleanup,omitempty"`
}
