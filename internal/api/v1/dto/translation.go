package dto

import (
	"suomicast/internal/api/errors"
	"suomicast/internal/app/model"
)

// TranslateSegmentRequest asks for one transcript segment to be translated
type TranslateSegmentRequest struct {
	SegmentID      string `json:"segmentId" binding:"required"`
	TargetLanguage string `json:"targetLanguage" binding:"required"`
}

// Validate performs domain-specific validation
func (r *TranslateSegmentRequest) Validate() error {
	validationErrors := make(map[string]string)

	if r.SegmentID == "" {
		validationErrors["segmentid"] = "segment id is required"
	}
	if !model.IsSupportedLanguage(r.TargetLanguage) {
		validationErrors["targetlanguage"] = "unsupported target language"
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid translation request", validationErrors)
	}
	return nil
}

// TranslationResponse represents a completed segment translation
type TranslationResponse struct {
	SegmentID        string `json:"segmentId"`
	TargetLanguage   string `json:"targetLanguage"`
	Original         string `json:"original"`
	Translation      string `json:"translation"`
	Notes            string `json:"notes,omitempty"`
	DetectedLanguage string `json:"detectedLanguage"`
}

// SupportedLanguagesResponse lists the selectable target languages
type SupportedLanguagesResponse struct {
	Languages []string `json:"languages"`
}
