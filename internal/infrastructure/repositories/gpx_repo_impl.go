package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/infrastructure/models"
)

type GpxRepository struct {
	db *gorm.DB
}

func NewGpxRepository(db *gorm.DB) *GpxRepository {
	return &GpxRepository{db: db}
}

func (r *GpxRepository) CreateUpload(ctx context.Context, upload *entities.GpxUpload) error {
	m := &models.GpxUpload{
		ID:         upload.ID,
		TeamID:     upload.TeamID,
		UploadedAt: upload.UploadedAt,
		GpxData:    upload.GpxData,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *GpxRepository) CreateCleanup(ctx context.Context, cleanup *entities.GpxCleanup) error {
	m := r.cleanupToModel(cleanup)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	cleanup.CreatedAt = m.CreatedAt
	return nil
}

func (r *GpxRepository) GetUpload(ctx context.Context, id uuid.UUID) (*entities.GpxUpload, error) {
	var m models.GpxUpload
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.GpxUpload{
		ID:         m.ID,
		TeamID:     m.TeamID,
		UploadedAt: m.UploadedAt,
		GpxData:    m.GpxData,
	}, nil
}

func (r *GpxRepository) ListUploadsByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.UploadWithCleanup, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.GpxUpload{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Where("team_id = ?", teamID).Order("uploaded_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ums []models.GpxUpload
	if err := query.Find(&ums).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.UploadWithCleanup, 0, len(ums))
	for i := range ums {
		item := &entities.UploadWithCleanup{
			Upload: &entities.GpxUpload{
				ID:         ums[i].ID,
				TeamID:     ums[i].TeamID,
				UploadedAt: ums[i].UploadedAt,
			},
		}

		var cm models.GpxCleanup
		err := db.Where("gpx_upload_id = ?", ums[i].ID).Order("created_at DESC").First(&cm).Error
		if err == nil {
			item.Cleanup = r.cleanupToEntity(&cm)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, err
		}

		items = append(items, item)
	}
	return items, total, nil
}

func (r *GpxRepository) ListCleanupsByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.GpxCleanup, error) {
	var cms []models.GpxCleanup
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Joins("JOIN gpx_uploads ON gpx_uploads.id = gpx_cleanups.gpx_upload_id").
		Where("gpx_uploads.team_id = ?", teamID).
		Order("gpx_cleanups.track_start ASC").
		Find(&cms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.GpxCleanup, 0, len(cms))
	for i := range cms {
		items = append(items, r.cleanupToEntity(&cms[i]))
	}
	return items, nil
}

func (r *GpxRepository) cleanupToEntity(m *models.GpxCleanup) *entities.GpxCleanup {
	return &entities.GpxCleanup{
		ID:                   m.ID,
		GpxUploadID:          m.GpxUploadID,
		TotalDistance:        m.TotalDistance,
		TotalTime:            m.TotalTime,
		AverageSpeed:         m.AverageSpeed,
		MaxSpeed:             m.MaxSpeed,
		MinSpeed:             m.MinSpeed,
		ScoredDistance:       m.ScoredDistance,
		PrunedDistanceSpeed:  m.PrunedDistanceSpeed,
		PrunedDistancePaused: m.PrunedDistancePaused,
		TrackStart:           m.TrackStart,
		TrackEnd:             m.TrackEnd,
		CreatedAt:            m.CreatedAt,
	}
}

func (r *GpxRepository) cleanupToModel(e *entities.GpxCleanup) *models.GpxCleanup {
	return &models.GpxCleanup{
		ID:                   e.ID,
		GpxUploadID:          e.GpxUploadID,
		TotalDistance:        e.TotalDistance,
		TotalTime:            e.TotalTime,
		AverageSpeed:         e.AverageSpeed,
		MaxSpeed:             e.MaxSpeed,
		MinSpeed:             e.MinSpeed,
		ScoredDistance:       e.ScoredDistance,
		PrunedDistanceSpeed:  e.PrunedDistanceSpeed,
		PrunedDistancePaused: e.PrunedDistancePaused,
		TrackStart:           e.TrackStart,
		TrackEnd:             e.TrackEnd,
		CreatedAt:            e.CreatedAt,
	}
}
