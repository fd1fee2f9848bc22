package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rideathon.backend/internal/domain/entities"
	"rideathon.backend/internal/infrastructure/models"
)

type OffsetRepository struct {
	db *gorm.DB
}

func NewOffsetRepository(db *gorm.DB) *OffsetRepository {
	return &OffsetRepository{db: db}
}

func (r *OffsetRepository) Create(ctx context.Context, offset *entities.Offset) error {
	m := r.toModel(offset)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	offset.CreatedAt = m.CreatedAt
	return nil
}

func (r *OffsetRepository) ListByReceiver(ctx context.Context, teamID uuid.UUID) ([]*entities.Offset, error) {
	var ms []models.Offset
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("receiver_id = ?", teamID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Offset, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *OffsetRepository) toEntity(m *models.Offset) *entities.Offset {
	return &entities.Offset{
		ID:          m.ID,
		Distance:    m.Distance,
		CreatorID:   m.CreatorID,
		ReceiverID:  m.ReceiverID,
		ChallengeID: m.ChallengeID,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *OffsetRepository) toModel(e *entities.Offset) *models.Offset {
	return &models.Offset{
		ID:          e.ID,
		Distance:    e.Distance,
		CreatorID:   e.CreatorID,
		ReceiverID:  e.ReceiverID,
		ChallengeID: e.ChallengeID,
		CreatedAt:   e.CreatedAt,
	}
}
