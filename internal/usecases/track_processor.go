package usecases

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/domain/repositories"
	"rideathon.backend/pkg/gpx"
	"rideathon.backend/pkg/utils"
)

// CleanupStats is the outcome of processing one trace. Distances are km,
// TotalTime seconds, speeds km/h.
type CleanupStats struct {
	TotalDistance        float64
	TotalTime            float64
	AverageSpeed         float64
	MaxSpeed             float64
	MinSpeed             float64
	ScoredDistance       float64
	PrunedDistanceSpeed  float64
	PrunedDistancePaused float64
	TrackStart           time.Time
	TrackEnd             time.Time
}

// CleanTrack turns an ordered point sequence into cleanup statistics.
//
// Segments faster than maxSpeedKmh are pruned into PrunedDistanceSpeed;
// segments ridden inside a pause window are pruned into
// PrunedDistancePaused. Speed statistics come from surviving segments only;
// a trace with zero surviving segments yields all-zero speeds, which is not
// an error. ScoredDistance + both pruned figures always equals
// TotalDistance.
//
// Fewer than two points, or timestamps that do not strictly increase, reject
// the whole trace with ErrInvalidTrack.
func CleanTrack(points []entities.TrackPoint, pauses []entities.TimeWindow, maxSpeedKmh float64) (*CleanupStats, error) {
	if len(points) < 2 {
		return nil, domainerrors.NewError("trace needs at least two points", domainerrors.ErrInvalidTrack)
	}
	for i := 1; i < len(points); i++ {
		if !points[i].Time.After(points[i-1].Time) {
			return nil, domainerrors.NewError("trace timestamps must increase", domainerrors.ErrInvalidTrack)
		}
	}
	if maxSpeedKmh <= 0 {
		maxSpeedKmh = DefaultMaxPlausibleSpeedKmh
	}

	stats := &CleanupStats{
		TrackStart: points[0].Time,
		TrackEnd:   points[len(points)-1].Time,
	}
	stats.TotalTime = stats.TrackEnd.Sub(stats.TrackStart).Seconds()

	var survivingHours float64
	for i := 1; i < len(points); i++ {
		dist := haversineKm(points[i-1], points[i])
		hours := points[i].Time.Sub(points[i-1].Time).Hours()
		speed := dist / hours

		stats.TotalDistance += dist

		if speed > maxSpeedKmh {
			stats.PrunedDistanceSpeed += dist
			continue
		}
		if inPause(segmentMidpoint(points[i-1].Time, points[i].Time), pauses) {
			stats.PrunedDistancePaused += dist
			continue
		}

		stats.ScoredDistance += dist
		survivingHours += hours
		if stats.MaxSpeed == 0 || speed > stats.MaxSpeed {
			stats.MaxSpeed = speed
		}
		if stats.MinSpeed == 0 || speed < stats.MinSpeed {
			stats.MinSpeed = speed
		}
	}

	if survivingHours > 0 {
		stats.AverageSpeed = stats.ScoredDistance / survivingHours
	}
	return stats, nil
}

func segmentMidpoint(a, b time.Time) time.Time {
	return a.Add(b.Sub(a) / 2)
}

func inPause(t time.Time, pauses []entities.TimeWindow) bool {
	for _, w := range pauses {
		if w.Contains(t) {
			return true
		}
	}
	return false
}

// haversineKm is the great-circle distance between two samples
func haversineKm(a, b entities.TrackPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// TrackUsecase ingests raw GPX uploads, cleans them, and persists the
// upload plus its cleanup record as one unit
type TrackUsecase struct {
	gpxRepo      repositories.GpxRepository
	modifierRepo repositories.ModifierRepository
	uow          repositories.UnitOfWork
	scorecard    *ScorecardUsecase
	maxSpeedKmh  float64
}

// NewTrackUsecase creates a new track usecase
func NewTrackUsecase(
	gpxRepo repositories.GpxRepository,
	modifierRepo repositories.ModifierRepository,
	uow repositories.UnitOfWork,
	scorecard *ScorecardUsecase,
	maxSpeedKmh float64,
) *TrackUsecase {
	if maxSpeedKmh <= 0 {
		maxSpeedKmh = DefaultMaxPlausibleSpeedKmh
	}
	return &TrackUsecase{
		gpxRepo:      gpxRepo,
		modifierRepo: modifierRepo,
		uow:          uow,
		scorecard:    scorecard,
		maxSpeedKmh:  maxSpeedKmh,
	}
}

// ProcessUpload parses and cleans a raw GPX payload for the team and, on
// success, persists the upload with its cleanup and recomputes the team's
// scorecard. A malformed trace rejects the upload outright; nothing is
// persisted and the scorecard is left untouched.
func (u *TrackUsecase) ProcessUpload(ctx context.Context, teamID uuid.UUID, gpxData []byte) (*entities.GpxCleanup, error) {
	points, err := gpx.Parse(gpxData)
	if err != nil {
		return nil, domainerrors.NewError("unreadable gpx payload", domainerrors.ErrInvalidTrack)
	}

	pauses, err := u.modifierRepo.ListPauseWindows(ctx, teamID)
	if err != nil {
		return nil, err
	}

	stats, err := CleanTrack(points, pauses, u.maxSpeedKmh)
	if err != nil {
		return nil, err
	}

	upload := &entities.GpxUpload{
		ID:         utils.GenerateUUIDv7(),
		TeamID:     teamID,
		UploadedAt: time.Now(),
		GpxData:    string(gpxData),
	}
	cleanup := &entities.GpxCleanup{
		ID:                   utils.GenerateUUIDv7(),
		GpxUploadID:          upload.ID,
		TotalDistance:        stats.TotalDistance,
		TotalTime:            stats.TotalTime,
		AverageSpeed:         stats.AverageSpeed,
		MaxSpeed:             stats.MaxSpeed,
		MinSpeed:             stats.MinSpeed,
		ScoredDistance:       stats.ScoredDistance,
		PrunedDistanceSpeed:  stats.PrunedDistanceSpeed,
		PrunedDistancePaused: stats.PrunedDistancePaused,
		TrackStart:           stats.TrackStart,
		TrackEnd:             stats.TrackEnd,
		CreatedAt:            time.Now(),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.gpxRepo.CreateUpload(txCtx, upload); err != nil {
			return err
		}
		return u.gpxRepo.CreateCleanup(txCtx, cleanup)
	})
	if err != nil {
		return nil, err
	}

	if _, err := u.scorecard.Recompute(ctx, teamID); err != nil {
		return nil, err
	}
	return cleanup, nil
}

// ListUploads returns the team's uploads, newest first
func (u *TrackUsecase) ListUploads(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.UploadWithCleanup, int64, error) {
	return u.gpxRepo.ListUploadsByTeam(ctx, teamID, limit, offset)
}
