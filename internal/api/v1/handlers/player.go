package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"suomicast/internal/api/errors"
	"suomicast/internal/api/middleware"
	"suomicast/internal/api/v1/dto"
	"suomicast/internal/api/v1/services"
)

// PlayerHandler handles playback synchronizer endpoints
type PlayerHandler struct {
	service services.PlayerService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(service services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		service: service,
	}
}

// GetState handles GET /api/v1/player
func (h *PlayerHandler) GetState(c *gin.Context) {
	response, err := h.service.GetState(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateTime handles POST /api/v1/player/time
func (h *PlayerHandler) UpdateTime(c *gin.Context) {
	var req dto.TimeUpdateRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.UpdateTime(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ClickSegment handles POST /api/v1/player/segments/:id/click
func (h *PlayerHandler) ClickSegment(c *gin.Context) {
	segmentID := c.Param("id")
	if segmentID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Segment id is required"))
		return
	}

	response, err := h.service.ClickSegment(c.Request.Context(), segmentID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Seek handles POST /api/v1/player/seek
func (h *PlayerHandler) Seek(c *gin.Context) {
	var req dto.SeekRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Seek(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ReconcileMediaTime handles POST /api/v1/player/media-time
func (h *PlayerHandler) ReconcileMediaTime(c *gin.Context) {
	var req dto.MediaTimeRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ReconcileMediaTime(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CloseOverlay handles POST /api/v1/player/overlay/close
func (h *PlayerHandler) CloseOverlay(c *gin.Context) {
	response, err := h.service.CloseOverlay(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetPlaying handles POST /api/v1/player/playing
func (h *PlayerHandler) SetPlaying(c *gin.Context) {
	var req dto.PlayingRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SetPlaying(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetVolume handles POST /api/v1/player/volume
func (h *PlayerHandler) SetVolume(c *gin.Context) {
	var req dto.VolumeRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SetVolume(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
