package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/infrastructure/models"
)

type ModifierRepository struct {
	db *gorm.DB
}

func NewModifierRepository(db *gorm.DB) *ModifierRepository {
	return &ModifierRepository{db: db}
}

func (r *ModifierRepository) Create(ctx context.Context, modifier *entities.Modifier) error {
	m := r.toModel(modifier)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	modifier.CreatedAt = m.CreatedAt
	return nil
}

func (r *ModifierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Modifier, error) {
	var m models.Modifier
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ModifierRepository) ListForTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Modifier, error) {
	var ms []models.Modifier
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("receiver_id = ? OR receiver_id IS NULL", teamID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Modifier, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// ListPauseWindows returns only challenge-scoped pause entries. Challenge-less
// zero multipliers belong to the ledger path, which already zeroes their share
// of scored distance; pruning them here as well would subtract it twice.
func (r *ModifierRepository) ListPauseWindows(ctx context.Context, teamID uuid.UUID) ([]entities.TimeWindow, error) {
	var ms []models.Modifier
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("multiplier = 0 AND challenge_id IS NOT NULL AND (receiver_id = ? OR receiver_id IS NULL)", teamID).
		Order("start ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	windows := make([]entities.TimeWindow, 0, len(ms))
	for i := range ms {
		windows = append(windows, entities.TimeWindow{
			Start: null.TimeFromPtr(ms[i].Start),
			End:   null.TimeFromPtr(ms[i].End),
		})
	}
	return windows, nil
}

func (r *ModifierRepository) GetOpenByChallenge(ctx context.Context, challengeID, teamID uuid.UUID) (*entities.Modifier, error) {
	var m models.Modifier
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where(`challenge_id = ? AND receiver_id = ? AND "end" IS NULL`, challengeID, teamID).
		Order("created_at ASC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Close sets the window end on a still-open modifier. It never touches an
// already-closed entry, so calling it twice cannot move an end timestamp.
func (r *ModifierRepository) Close(ctx context.Context, id uuid.UUID, end time.Time) (bool, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Modifier{}).
		Where(`id = ? AND "end" IS NULL`, id).
		Update("end", end)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ModifierRepository) toEntity(m *models.Modifier) *entities.Modifier {
	return &entities.Modifier{
		ID:          m.ID,
		Multiplier:  m.Multiplier,
		CreatorID:   m.CreatorID,
		ReceiverID:  m.ReceiverID,
		ChallengeID: m.ChallengeID,
		Start:       null.TimeFromPtr(m.Start),
		End:         null.TimeFromPtr(m.End),
		CreatedAt:   m.CreatedAt,
	}
}

func (r *ModifierRepository) toModel(e *entities.Modifier) *models.Modifier {
	return &models.Modifier{
		ID:          e.ID,
		Multiplier:  e.Multiplier,
		CreatorID:   e.CreatorID,
		ReceiverID:  e.ReceiverID,
		ChallengeID: e.ChallengeID,
		Start:       e.Start.Ptr(),
		End:         e.End.Ptr(),
		CreatedAt:   e.CreatedAt,
	}
}
