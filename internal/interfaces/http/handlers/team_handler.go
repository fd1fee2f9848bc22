package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rideathon.backend/internal/domain/repositories"
	"rideathon.backend/internal/interfaces/http/response"
)

type TeamHandler struct {
	repo repositories.TeamRepository
}

func NewTeamHandler(repo repositories.TeamRepository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

// ListTeams returns every team for public pages. Secret hashes never leave
// the entity's JSON representation.
// GET /api/v1/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}
