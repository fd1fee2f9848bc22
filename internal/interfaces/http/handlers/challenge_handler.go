package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/interfaces/http/middleware"
	"rideathon.backend/internal/interfaces/http/response"
	"rideathon.backend/internal/usecases"
)

type ChallengeHandler struct {
	challengeUsecase *usecases.ChallengeUsecase
}

func NewChallengeHandler(challengeUsecase *usecases.ChallengeUsecase) *ChallengeHandler {
	return &ChallengeHandler{challengeUsecase: challengeUsecase}
}

// ListChallenges returns all challenges.
// GET /api/v1/challenges
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	items, err := h.challengeUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetChallenge returns one challenge.
// GET /api/v1/challenges/:id
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid challenge ID"))
		return
	}

	challenge, err := h.challengeUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, challenge)
}

// ActivateChallenge claims an available challenge for the caller's team.
// The token comes from the QR code printed at the challenge site.
// POST /api/v1/challenges/:id/activate
func (h *ChallengeHandler) ActivateChallenge(c *gin.Context) {
	id, teamID, ok := h.challengeAndTeam(c)
	if !ok {
		return
	}

	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	challenge, err := h.challengeUsecase.Activate(c.Request.Context(), id, teamID, input.Token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, challenge)
}

// CompleteChallenge finishes the caller's active challenge.
// POST /api/v1/challenges/:id/complete
func (h *ChallengeHandler) CompleteChallenge(c *gin.Context) {
	id, teamID, ok := h.challengeAndTeam(c)
	if !ok {
		return
	}

	challenge, err := h.challengeUsecase.Complete(c.Request.Context(), id, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, challenge)
}

// ForfeitChallenge abandons the caller's active challenge, taking the
// distance penalty.
// POST /api/v1/challenges/:id/forfeit
func (h *ChallengeHandler) ForfeitChallenge(c *gin.Context) {
	id, teamID, ok := h.challengeAndTeam(c)
	if !ok {
		return
	}

	challenge, err := h.challengeUsecase.Forfeit(c.Request.Context(), id, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, challenge)
}

func (h *ChallengeHandler) challengeAndTeam(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid challenge ID"))
		return uuid.Nil, uuid.Nil, false
	}

	teamID, ok := middleware.TeamIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing team identity"))
		return uuid.Nil, uuid.Nil, false
	}
	return id, teamID, true
}
