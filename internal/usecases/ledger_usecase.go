package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/domain/repositories"
	"rideathon.backend/pkg/utils"
)

// LedgerUsecase is the adjustment ledger: append-only modifiers and offsets,
// plus the net-adjusted-distance computation the scorecard builds on.
type LedgerUsecase struct {
	modifierRepo repositories.ModifierRepository
	offsetRepo   repositories.OffsetRepository
}

// NewLedgerUsecase creates a new ledger usecase
func NewLedgerUsecase(
	modifierRepo repositories.ModifierRepository,
	offsetRepo repositories.OffsetRepository,
) *LedgerUsecase {
	return &LedgerUsecase{
		modifierRepo: modifierRepo,
		offsetRepo:   offsetRepo,
	}
}

// CreateModifier appends an immutable modifier entry
func (u *LedgerUsecase) CreateModifier(ctx context.Context, input *entities.CreateModifierInput) (*entities.Modifier, error) {
	if input.Multiplier < 0 {
		return nil, domainerrors.NewError("multiplier must not be negative", domainerrors.ErrInvalidModifier)
	}
	if input.Start.Valid && input.End.Valid && input.End.Time.Before(input.Start.Time) {
		return nil, domainerrors.NewError("modifier window ends before it starts", domainerrors.ErrInvalidModifier)
	}

	modifier := &entities.Modifier{
		ID:          utils.GenerateUUIDv7(),
		Multiplier:  input.Multiplier,
		CreatorID:   input.CreatorID,
		ReceiverID:  input.ReceiverID,
		ChallengeID: input.ChallengeID,
		Start:       input.Start,
		End:         input.End,
		CreatedAt:   time.Now(),
	}
	if err := u.modifierRepo.Create(ctx, modifier); err != nil {
		return nil, err
	}
	return modifier, nil
}

// CreateOffset appends an immutable offset entry, timestamped at creation.
// Negative distances are penalties.
func (u *LedgerUsecase) CreateOffset(ctx context.Context, input *entities.CreateOffsetInput) (*entities.Offset, error) {
	offset := &entities.Offset{
		ID:          utils.GenerateUUIDv7(),
		Distance:    input.Distance,
		CreatorID:   input.CreatorID,
		ReceiverID:  input.ReceiverID,
		ChallengeID: input.ChallengeID,
		CreatedAt:   time.Now(),
	}
	if err := u.offsetRepo.Create(ctx, offset); err != nil {
		return nil, err
	}
	return offset, nil
}

// CloseModifier sets the end of a still-open modifier window. Closing an
// already-closed modifier is a no-op, never a double edit.
func (u *LedgerUsecase) CloseModifier(ctx context.Context, id uuid.UUID, end time.Time) (*entities.Modifier, error) {
	if _, err := u.modifierRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := u.modifierRepo.Close(ctx, id, end); err != nil {
		return nil, err
	}
	return u.modifierRepo.GetByID(ctx, id)
}

// NetAdjustedDistance applies the ledger to a team's raw distance.
//
// Each distance window is partitioned at the start/end edges of the
// applicable modifier windows; the raw distance inside a sub-interval,
// taken as uniformly ridden, is multiplied by the product of every
// multiplier covering it. Overlapping modifiers compose multiplicatively,
// so creation order never changes the result. The sum over all
// sub-intervals then gains every offset addressed to the team, in full,
// regardless of when the distance was ridden.
//
// Challenge-scoped modifiers (challenge_id set) attach to distance ridden
// for that challenge. Raw ride distance carries no challenge attribution
// and pause windows are already excluded from scored distance at cleanup
// time, so those entries are skipped here; applying them again would
// double-count the pause.
func (u *LedgerUsecase) NetAdjustedDistance(ctx context.Context, teamID uuid.UUID, windows []entities.DistanceWindow) (float64, error) {
	modifiers, err := u.modifierRepo.ListForTeam(ctx, teamID)
	if err != nil {
		return 0, err
	}

	applicable := make([]*entities.Modifier, 0, len(modifiers))
	for _, m := range modifiers {
		if m.ChallengeID == nil && m.AppliesTo(teamID) {
			applicable = append(applicable, m)
		}
	}

	var total float64
	for _, w := range windows {
		total += adjustWindow(w, applicable)
	}

	offsets, err := u.offsetRepo.ListByReceiver(ctx, teamID)
	if err != nil {
		return 0, err
	}
	for _, o := range offsets {
		total += o.Distance
	}
	return total, nil
}

// ListModifiers returns the team's modifiers including global entries
func (u *LedgerUsecase) ListModifiers(ctx context.Context, teamID uuid.UUID) ([]*entities.Modifier, error) {
	return u.modifierRepo.ListForTeam(ctx, teamID)
}

// ListOffsets returns the team's offsets
func (u *LedgerUsecase) ListOffsets(ctx context.Context, teamID uuid.UUID) ([]*entities.Offset, error) {
	return u.offsetRepo.ListByReceiver(ctx, teamID)
}

func adjustWindow(w entities.DistanceWindow, modifiers []*entities.Modifier) float64 {
	if w.Distance == 0 {
		return 0
	}
	if !w.End.After(w.Start) {
		// Instantaneous window: everything earned at w.Start
		return w.Distance * multiplierAt(w.Start, modifiers)
	}

	edges := []time.Time{w.Start, w.End}
	for _, m := range modifiers {
		if m.Start.Valid && m.Start.Time.After(w.Start) && m.Start.Time.Before(w.End) {
			edges = append(edges, m.Start.Time)
		}
		if m.End.Valid && m.End.Time.After(w.Start) && m.End.Time.Before(w.End) {
			edges = append(edges, m.End.Time)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Before(edges[j]) })

	span := w.End.Sub(w.Start)
	var adjusted float64
	for i := 1; i < len(edges); i++ {
		lo, hi := edges[i-1], edges[i]
		if !hi.After(lo) {
			continue
		}
		fraction := float64(hi.Sub(lo)) / float64(span)
		mid := lo.Add(hi.Sub(lo) / 2)
		adjusted += w.Distance * fraction * multiplierAt(mid, modifiers)
	}
	return adjusted
}

func multiplierAt(t time.Time, modifiers []*entities.Modifier) float64 {
	product := 1.0
	for _, m := range modifiers {
		if m.ActiveAt(t) {
			product *= m.Multiplier
		}
	}
	return product
}
