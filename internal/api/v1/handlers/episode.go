package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"suomicast/internal/api/middleware"
	"suomicast/internal/api/v1/dto"
	"suomicast/internal/api/v1/services"
)

// EpisodeHandler handles episode-related API endpoints
type EpisodeHandler struct {
	service services.EpisodeService
}

// NewEpisodeHandler creates a new episode handler
func NewEpisodeHandler(service services.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{
		service: service,
	}
}

// GetCurrent handles GET /api/v1/episodes/current
// Returns the displayed episode and whether a newer one is staged.
func (h *EpisodeHandler) GetCurrent(c *gin.Context) {
	response, err := h.service.GetCurrent(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ApplyPending handles POST /api/v1/episodes/pending/apply
// Swaps the staged episode in and resets playback to the beginning.
func (h *EpisodeHandler) ApplyPending(c *gin.Context) {
	response, err := h.service.ApplyPending(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetByDate handles GET /api/v1/episodes/:dateKey
// Returns stored episode metadata without the audio payload.
func (h *EpisodeHandler) GetByDate(c *gin.Context) {
	dateKey := c.Param("dateKey")
	if err := dto.ValidateDateKey(dateKey); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetByDate(c.Request.Context(), dateKey)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Select handles POST /api/v1/episodes/:dateKey/select
// Switches playback to an archived episode.
func (h *EpisodeHandler) Select(c *gin.Context) {
	dateKey := c.Param("dateKey")
	if err := dto.ValidateDateKey(dateKey); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SelectEpisode(c.Request.Context(), dateKey)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/v1/episodes
// Lists archived episodes, newest first.
func (h *EpisodeHandler) List(c *gin.Context) {
	items, err := h.service.ListArchive(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"episodes": items, "total": len(items)})
}

// GetAudio handles GET /api/v1/episodes/:dateKey/audio
// Streams the stored WAV payload with range support.
func (h *EpisodeHandler) GetAudio(c *gin.Context) {
	dateKey := c.Param("dateKey")
	if err := dto.ValidateDateKey(dateKey); err != nil {
		middleware.HandleError(c, err)
		return
	}

	audio, err := h.service.GetAudio(c.Request.Context(), dateKey)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "audio/wav")
	http.ServeContent(c.Writer, c.Request, dateKey+".wav", time.Time{}, bytes.NewReader(audio))
}
