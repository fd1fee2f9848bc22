package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/interfaces/http/middleware"
	"rideathon.backend/internal/interfaces/http/response"
	"rideathon.backend/internal/usecases"
	"rideathon.backend/pkg/utils"
)

// maxGpxBytes caps upload size. A full day of riding at 1s sampling is
// well under 10 MB of GPX.
const maxGpxBytes = 10 << 20

type UploadHandler struct {
	trackUsecase *usecases.TrackUsecase
}

func NewUploadHandler(trackUsecase *usecases.TrackUsecase) *UploadHandler {
	return &UploadHandler{trackUsecase: trackUsecase}
}

// UploadTrack ingests a raw GPX document for the caller's team. The body
// is the GPX file itself; multipart uploads send it as the "file" field.
// POST /api/v1/uploads
func (h *UploadHandler) UploadTrack(c *gin.Context) {
	teamID, ok := middleware.TeamIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing team identity"))
		return
	}

	data, err := h.readBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cleanup, err := h.trackUsecase.ProcessUpload(c.Request.Context(), teamID, data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cleanup)
}

// ListUploads returns the caller's uploads with their cleanup results,
// newest first.
// GET /api/v1/uploads?page=1&limit=20
func (h *UploadHandler) ListUploads(c *gin.Context) {
	teamID, ok := middleware.TeamIDFromContext(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing team identity"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	items, total, err := h.trackUsecase.ListUploads(c.Request.Context(), teamID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

func (h *UploadHandler) readBody(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, domainerrors.BadRequest("could not read uploaded file")
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxGpxBytes))
		if err != nil {
			return nil, domainerrors.BadRequest("could not read uploaded file")
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxGpxBytes))
	if err != nil || len(data) == 0 {
		return nil, domainerrors.BadRequest("request body must contain a GPX document")
	}
	return data, nil
}
