package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apierrors "suomicast/internal/api/errors"
	"suomicast/internal/api/v1/dto"
	"suomicast/internal/api/v1/handlers"
	"suomicast/internal/api/v1/services"
	"suomicast/internal/app/testutil"
)

func TestTranslationHandler_Translate(t *testing.T) {
	tests := []struct {
		name           string
		request        dto.TranslateSegmentRequest
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "successful translation",
			request: dto.TranslateSegmentRequest{
				SegmentID:      "seg-1",
				TargetLanguage: "English",
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranslationService.On("TranslateSegment", mock.Anything, mock.Anything).
					Return(&dto.TranslationResponse{
						SegmentID:        "seg-1",
						TargetLanguage:   "English",
						Original:         "Hyvää huomenta.",
						Translation:      "Good morning.",
						Notes:            "Common greeting before noon.",
						DetectedLanguage: "Finnish",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Good morning.", body["translation"])
				assert.Equal(t, "Finnish", body["detectedLanguage"])
			},
		},
		{
			name: "unsupported language",
			request: dto.TranslateSegmentRequest{
				SegmentID:      "seg-1",
				TargetLanguage: "Klingon",
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
			},
		},
		{
			name: "provider outage surfaces to caller",
			request: dto.TranslateSegmentRequest{
				SegmentID:      "seg-1",
				TargetLanguage: "German",
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranslationService.On("TranslateSegment", mock.Anything, mock.Anything).
					Return(nil, apierrors.NewServiceUnavailableError("Translation failed: quota exceeded"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "service_unavailable", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewTranslationHandler(mockServices.TranslationService)
			router.POST("/translations", handler.Translate)

			w := postJSON(t, router, "/translations", tt.request)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			tt.validateBody(t, body)

			mockServices.TranslationService.AssertExpectations(t)
		})
	}
}

// The translation routes are registered even when no translator credential is
// configured; requests must get an explicit 503 error state, never a 404.
func TestTranslationHandler_Unconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	service := services.NewTranslationService(nil, nil)
	handler := handlers.NewTranslationHandler(service)
	router.POST("/translations", handler.Translate)
	router.GET("/translations/languages", handler.Languages)

	w := postJSON(t, router, "/translations", dto.TranslateSegmentRequest{
		SegmentID:      "seg-1",
		TargetLanguage: "English",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "service_unavailable", body["kind"])

	// The language list is static and stays available without a credential.
	req := httptest.NewRequest(http.MethodGet, "/translations/languages", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTranslationHandler_Languages(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.TranslationService.On("SupportedLanguages", mock.Anything).
		Return(&dto.SupportedLanguagesResponse{
			Languages: []string{"English", "Chinese (Simplified)", "Ukrainian", "Spanish", "German"},
		})

	handler := handlers.NewTranslationHandler(mockServices.TranslationService)
	router.GET("/translations/languages", handler.Languages)

	req := httptest.NewRequest(http.MethodGet, "/translations/languages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	languages := body["languages"].([]interface{})
	assert.Len(t, languages, 5)
	assert.Equal(t, "English", languages[0])
}
