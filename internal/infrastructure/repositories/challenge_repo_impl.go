package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/infrastructure/models"
)

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) Create(ctx context.Context, challenge *entities.Challenge) error {
	m := r.toModel(challenge)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	challenge.CreatedAt = m.CreatedAt
	return nil
}

func (r *ChallengeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Challenge, error) {
	var m models.Challenge
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ChallengeRepository) List(ctx context.Context) ([]*entities.Challenge, error) {
	var ms []models.Challenge
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *ChallengeRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Challenge, error) {
	var ms []models.Challenge
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("start ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *ChallengeRepository) CountCompletedByTeam(ctx context.Context, teamID uuid.UUID) (int, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Challenge{}).
		Where("team_id = ? AND status = ?", teamID, string(entities.ChallengeCompleted)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *ChallengeRepository) Transition(ctx context.Context, challenge *entities.Challenge, from entities.ChallengeStatus) error {
	updates := map[string]interface{}{
		"status":  string(challenge.Status),
		"team_id": challenge.TeamID,
		"start":   challenge.Start.Ptr(),
		"end":     challenge.End.Ptr(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Challenge{}).
		Where("id = ? AND status = ?", challenge.ID, string(from)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

func (r *ChallengeRepository) toEntities(ms []models.Challenge) []*entities.Challenge {
	items := make([]*entities.Challenge, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *ChallengeRepository) toEntity(m *models.Challenge) *entities.Challenge {
	return &entities.Challenge{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Token:         m.Token,
		PauseDistance: m.PauseDistance,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		Status:        entities.ChallengeStatus(m.Status),
		TeamID:        m.TeamID,
		Start:         null.TimeFromPtr(m.Start),
		End:           null.TimeFromPtr(m.End),
		CreatedAt:     m.CreatedAt,
	}
}

func (r *ChallengeRepository) toModel(e *entities.Challenge) *models.Challenge {
	return &models.Challenge{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Token:         e.Token,
		PauseDistance: e.PauseDistance,
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		Status:        string(e.Status),
		TeamID:        e.TeamID,
		Start:         e.Start.Ptr(),
		End:           e.End.Ptr(),
		CreatedAt:     e.CreatedAt,
	}
}
