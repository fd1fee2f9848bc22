package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/infrastructure/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m, err := r.toModel(team)
	if err != nil {
		return err
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

func (r *TeamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	var ms []models.Team
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		e, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	members, err := json.Marshal(team.Members)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":        team.Name,
		"members":     string(members),
		"color":       team.Color,
		"secret_hash": team.SecretHash,
		"updated_at":  time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", team.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) toEntity(m *models.Team) (*entities.Team, error) {
	var members []string
	if m.Members != "" {
		if err := json.Unmarshal([]byte(m.Members), &members); err != nil {
			return nil, err
		}
	}
	return &entities.Team{
		ID:         m.ID,
		Name:       m.Name,
		Members:    members,
		Color:      m.Color,
		SecretHash: m.SecretHash,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

func (r *TeamRepository) toModel(e *entities.Team) (*models.Team, error) {
	members, err := json.Marshal(e.Members)
	if err != nil {
		return nil, err
	}
	return &models.Team{
		ID:         e.ID,
		Name:       e.Name,
		Members:    string(members),
		Color:      e.Color,
		SecretHash: e.SecretHash,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}, nil
}
