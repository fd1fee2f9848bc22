package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rideathon.backend/internal/domain/entities"
)

func newAdminRouter(env *handlerEnv) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(env.admin, env.ledger, env.scorecard)
	r := gin.New()
	r.POST("/admin/teams", h.CreateTeam)
	r.POST("/admin/challenges", h.CreateChallenge)
	r.POST("/admin/modifiers", h.CreateModifier)
	r.POST("/admin/modifiers/:id/close", h.CloseModifier)
	r.POST("/admin/offsets", h.CreateOffset)
	r.GET("/admin/teams/:id/modifiers", h.ListTeamModifiers)
	r.GET("/admin/teams/:id/offsets", h.ListTeamOffsets)
	r.POST("/admin/recompute", h.RecomputeScorecards)
	return r
}

func TestAdminHandler_CreateTeam(t *testing.T) {
	env := newHandlerEnv()
	r := newAdminRouter(env)

	rec := postJSON(r, "/admin/teams", map[string]any{
		"name":    "night-riders",
		"members": []string{"ada", "grace"},
		"color":   "#ff6600",
		"secret":  "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var team entities.Team
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &team))
	assert.Equal(t, "night-riders", team.Name)
	assert.NotContains(t, rec.Body.String(), "s3cret")

	// duplicate names are rejected
	rec = postJSON(r, "/admin/teams", map[string]any{"name": "night-riders", "secret": "other"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminHandler_CreateTeam_MissingSecret(t *testing.T) {
	env := newHandlerEnv()
	r := newAdminRouter(env)

	rec := postJSON(r, "/admin/teams", map[string]any{"name": "night-riders"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_CreateChallenge_ReturnsToken(t *testing.T) {
	env := newHandlerEnv()
	r := newAdminRouter(env)

	rec := postJSON(r, "/admin/challenges", map[string]any{
		"name":          "bridge-sprint",
		"description":   "Sprint across the old bridge",
		"pauseDistance": true,
		"latitude":      51.05,
		"longitude":     3.72,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Challenge entities.Challenge `json:"challenge"`
		Token     string             `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entities.ChallengeAvailable, resp.Challenge.Status)
	assert.True(t, resp.Challenge.PauseDistance)
	assert.Len(t, resp.Token, 16)

	stored, err := env.challenges.GetByID(nil, resp.Challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Token, stored.Token)
}

func TestAdminHandler_ModifierLifecycle(t *testing.T) {
	env := newHandlerEnv()
	team := seedTeam(t, env, "night-riders", "s3cret")
	r := newAdminRouter(env)

	rec := postJSON(r, "/admin/modifiers", map[string]any{
		"multiplier": 2.0,
		"creatorId":  uuid.NewString(),
		"receiverId": team.ID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var modifier entities.Modifier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &modifier))
	assert.Equal(t, 2.0, modifier.Multiplier)

	rec = postJSON(r, "/admin/modifiers/"+modifier.ID.String()+"/close", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var closed entities.Modifier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &closed))
	assert.True(t, closed.End.Valid)

	req := httptest.NewRequest(http.MethodGet, "/admin/teams/"+team.ID.String()+"/modifiers", nil)
	listRec := httptest.NewRecorder()
	r.ServeHTTP(listRec, req)
	require.Equal(t, http.StatusOK, listRec.Code)
	assert.Contains(t, listRec.Body.String(), modifier.ID.String())
}

func TestAdminHandler_CreateModifier_NegativeMultiplier(t *testing.T) {
	env := newHandlerEnv()
	r := newAdminRouter(env)

	rec := postJSON(r, "/admin/modifiers", map[string]any{
		"multiplier": -1.0,
		"creatorId":  uuid.NewString(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_CreateOffsetAndList(t *testing.T) {
	env := newHandlerEnv()
	team := seedTeam(t, env, "night-riders", "s3cret")
	r := newAdminRouter(env)

	rec := postJSON(r, "/admin/offsets", map[string]any{
		"distance":   -7.5,
		"creatorId":  uuid.NewString(),
		"receiverId": team.ID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/admin/teams/"+team.ID.String()+"/offsets", nil)
	listRec := httptest.NewRecorder()
	r.ServeHTTP(listRec, req)
	require.Equal(t, http.StatusOK, listRec.Code)

	var resp struct {
		Items []entities.Offset `json:"items"`
	}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, -7.5, resp.Items[0].Distance)
}

func TestAdminHandler_RecomputeScorecards(t *testing.T) {
	env := newHandlerEnv()
	alpha := seedTeam(t, env, "alpha", "secret-a")
	bravo := seedTeam(t, env, "bravo", "secret-b")
	r := newAdminRouter(env)

	rec := postJSON(r, "/admin/recompute", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		RecomputedTeams []uuid.UUID `json:"recomputedTeams"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.RecomputedTeams, 2)

	for _, teamID := range []uuid.UUID{alpha.ID, bravo.ID} {
		card, err := env.scorecards.GetLatestByTeam(nil, teamID)
		require.NoError(t, err)
		assert.Zero(t, card.DistanceEarned)
	}
}
