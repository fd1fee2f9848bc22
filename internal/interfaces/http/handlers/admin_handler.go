package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/interfaces/http/response"
	"rideathon.backend/internal/usecases"
)

// AdminHandler exposes the event-operator surface: seeding teams and
// challenges, issuing ledger adjustments, and forcing recomputes. All
// routes sit behind the admin secret middleware.
type AdminHandler struct {
	adminUsecase     *usecases.AdminUsecase
	ledgerUsecase    *usecases.LedgerUsecase
	scorecardUsecase *usecases.ScorecardUsecase
}

func NewAdminHandler(
	adminUsecase *usecases.AdminUsecase,
	ledgerUsecase *usecases.LedgerUsecase,
	scorecardUsecase *usecases.ScorecardUsecase,
) *AdminHandler {
	return &AdminHandler{
		adminUsecase:     adminUsecase,
		ledgerUsecase:    ledgerUsecase,
		scorecardUsecase: scorecardUsecase,
	}
}

// CreateTeam registers a new team.
// POST /api/v1/admin/teams
func (h *AdminHandler) CreateTeam(c *gin.Context) {
	var input entities.CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.adminUsecase.CreateTeam(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, team)
}

// CreateChallenge seeds a challenge and returns its activation token so
// the operator can print it.
// POST /api/v1/admin/challenges
func (h *AdminHandler) CreateChallenge(c *gin.Context) {
	var input entities.CreateChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	challenge, token, err := h.adminUsecase.CreateChallenge(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"challenge": challenge,
		"token":     token,
	})
}

// CreateModifier records a manual distance multiplier.
// POST /api/v1/admin/modifiers
func (h *AdminHandler) CreateModifier(c *gin.Context) {
	var input entities.CreateModifierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	modifier, err := h.ledgerUsecase.CreateModifier(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, modifier)
}

// CloseModifier ends an open modifier window as of now.
// POST /api/v1/admin/modifiers/:id/close
func (h *AdminHandler) CloseModifier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid modifier ID"))
		return
	}

	modifier, err := h.ledgerUsecase.CloseModifier(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, modifier)
}

// CreateOffset records a flat distance adjustment.
// POST /api/v1/admin/offsets
func (h *AdminHandler) CreateOffset(c *gin.Context) {
	var input entities.CreateOffsetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	offset, err := h.ledgerUsecase.CreateOffset(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, offset)
}

// ListTeamModifiers returns all modifiers affecting a team.
// GET /api/v1/admin/teams/:id/modifiers
func (h *AdminHandler) ListTeamModifiers(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	modifiers, err := h.ledgerUsecase.ListModifiers(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": modifiers})
}

// ListTeamOffsets returns all offsets received by a team.
// GET /api/v1/admin/teams/:id/offsets
func (h *AdminHandler) ListTeamOffsets(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	offsets, err := h.ledgerUsecase.ListOffsets(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": offsets})
}

// RecomputeScorecards rebuilds every team's scorecard.
// POST /api/v1/admin/recompute
func (h *AdminHandler) RecomputeScorecards(c *gin.Context) {
	recomputed, err := h.adminUsecase.RecomputeAll(c.Request.Context(), h.scorecardUsecase)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recomputedTeams": recomputed})
}
