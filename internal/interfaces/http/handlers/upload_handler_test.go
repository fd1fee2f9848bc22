package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"rideathon.backend/internal/domain/entities"
)

// testGpxDoc builds a short ride: one point per minute, 0.001 deg of
// latitude per step, roughly 6.7 km/h.
func testGpxDoc(points int) string {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1"><trk><trkseg>`)
	for i := 0; i < points; i++ {
		fmt.Fprintf(&b, `<trkpt lat="%.4f" lon="3.7200"><time>%s</time></trkpt>`,
			51.0+float64(i)*0.001, start.Add(time.Duration(i)*time.Minute).Format(time.RFC3339))
	}
	b.WriteString(`</trkseg></trk></gpx>`)
	return b.String()
}

func newUploadRouter(env *handlerEnv, teamID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUploadHandler(env.track)
	r := gin.New()
	authed := r.Group("/", asTeam(teamID))
	authed.POST("/uploads", h.UploadTrack)
	authed.GET("/uploads", h.ListUploads)
	return r
}

func TestUploadHandler_UploadRawBody(t *testing.T) {
	env := newHandlerEnv()
	team := seedTeam(t, env, "night-riders", "s3cret")
	r := newUploadRouter(env, team.ID)

	req := httptest.NewRequest(http.MethodPost, "/uploads", bytes.NewBufferString(testGpxDoc(11)))
	req.Header.Set("Content-Type", "application/gpx+xml")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var cleanup entities.GpxCleanup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cleanup))
	assert.InDelta(t, 1.112, cleanup.TotalDistance, 0.01)
	assert.Equal(t, cleanup.TotalDistance, cleanup.ScoredDistance)

	// upload and scorecard both persisted
	assert.Len(t, env.gpx.uploads, 1)
	latest, err := env.scorecards.GetLatestByTeam(nil, team.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.112, latest.DistanceTraveled, 0.01)
}

func TestUploadHandler_GlobalPauseModifierAppliedOnce(t *testing.T) {
	env := newHandlerEnv()
	team := seedTeam(t, env, "night-riders", "s3cret")
	r := newUploadRouter(env, team.ID)

	// Challenge-less 0x modifier over the first half of the ride. The ledger
	// zeroes that half of the earned distance; cleanup must leave the scored
	// distance alone or the same half is subtracted twice.
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, env.modifiers.Create(nil, &entities.Modifier{
		ID:         uuid.New(),
		Multiplier: 0,
		CreatorID:  team.ID,
		Start:      null.TimeFrom(start),
		End:        null.TimeFrom(start.Add(30 * time.Minute)),
		CreatedAt:  time.Now(),
	}))

	req := httptest.NewRequest(http.MethodPost, "/uploads", bytes.NewBufferString(testGpxDoc(61)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var cleanup entities.GpxCleanup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cleanup))
	assert.Equal(t, cleanup.TotalDistance, cleanup.ScoredDistance)
	assert.Zero(t, cleanup.PrunedDistancePaused)

	latest, err := env.scorecards.GetLatestByTeam(nil, team.ID)
	require.NoError(t, err)
	assert.InDelta(t, latest.DistanceTraveled/2, latest.DistanceEarned, 0.001)
}

func TestUploadHandler_UploadMultipart(t *testing.T) {
	env := newHandlerEnv()
	team := seedTeam(t, env, "night-riders", "s3cret")
	r := newUploadRouter(env, team.ID)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "ride.gpx")
	require.NoError(t, err)
	_, err = part.Write([]byte(testGpxDoc(11)))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestUploadHandler_UploadMalformed(t *testing.T) {
	env := newHandlerEnv()
	team := seedTeam(t, env, "night-riders", "s3cret")
	r := newUploadRouter(env, team.ID)

	req := httptest.NewRequest(http.MethodPost, "/uploads", bytes.NewBufferString("definitely not gpx"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.gpx.uploads)
}

func TestUploadHandler_UploadEmptyBody(t *testing.T) {
	env := newHandlerEnv()
	team := seedTeam(t, env, "night-riders", "s3cret")
	r := newUploadRouter(env, team.ID)

	req := httptest.NewRequest(http.MethodPost, "/uploads", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_ListUploads(t *testing.T) {
	env := newHandlerEnv()
	team := seedTeam(t, env, "night-riders", "s3cret")
	r := newUploadRouter(env, team.ID)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/uploads", bytes.NewBufferString(testGpxDoc(5)))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/uploads?page=1&limit=2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Items      []entities.UploadWithCleanup `json:"items"`
		Pagination struct {
			TotalCount int64 `json:"totalCount"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(3), resp.Pagination.TotalCount)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}
