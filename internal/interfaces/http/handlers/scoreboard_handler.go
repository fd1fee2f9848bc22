package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/interfaces/http/response"
	"rideathon.backend/internal/usecases"
)

type ScoreboardHandler struct {
	scorecardUsecase *usecases.ScorecardUsecase
}

func NewScoreboardHandler(scorecardUsecase *usecases.ScorecardUsecase) *ScoreboardHandler {
	return &ScoreboardHandler{scorecardUsecase: scorecardUsecase}
}

// GetLeaderboard returns the ranked standings for all teams.
// GET /api/v1/scoreboard
func (h *ScoreboardHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.scorecardUsecase.Leaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": entries})
}

// GetTeamScorecard returns the latest scorecard for one team.
// GET /api/v1/scoreboard/teams/:id
func (h *ScoreboardHandler) GetTeamScorecard(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	scorecard, err := h.scorecardUsecase.Latest(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, scorecard)
}
