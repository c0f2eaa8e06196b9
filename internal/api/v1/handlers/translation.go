package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"suomicast/internal/api/middleware"
	"suomicast/internal/api/v1/dto"
	"suomicast/internal/api/v1/services"
)

// TranslationHandler handles segment translation endpoints
type TranslationHandler struct {
	service services.TranslationService
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(service services.TranslationService) *TranslationHandler {
	return &TranslationHandler{
		service: service,
	}
}

// Translate handles POST /api/v1/translations
func (h *TranslationHandler) Translate(c *gin.Context) {
	var req dto.TranslateSegmentRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.TranslateSegment(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Languages handles GET /api/v1/translations/languages
func (h *TranslationHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SupportedLanguages(c.Request.Context()))
}
