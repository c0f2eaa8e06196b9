package services

import (
	"context"

	"suomicast/internal/api/errors"
	"suomicast/internal/api/v1/dto"
	"suomicast/internal/app/api"
	"suomicast/internal/app/model"
	"suomicast/internal/app/refresh"
	"suomicast/internal/config"
)

// TranslationServiceImpl implements TranslationService. The segment text is
// resolved from the displayed episode so the client only ships an ID.
type TranslationServiceImpl struct {
	controller *refresh.Controller
	translator api.Translator // nil when no credential is configured
}

// NewTranslationService creates a new translation service
func NewTranslationService(controller *refresh.Controller, translator api.Translator) TranslationService {
	return &TranslationServiceImpl{
		controller: controller,
		translator: translator,
	}
}

// TranslateSegment translates one transcript segment of the displayed
// episode. Failures surface to the caller; there is no cached fallback.
func (s *TranslationServiceImpl) TranslateSegment(ctx context.Context, req *dto.TranslateSegmentRequest) (*dto.TranslationResponse, error) {
	if s.translator == nil {
		return nil, errors.NewServiceUnavailableError("Translation is not configured")
	}

	episode, _ := s.controller.Displayed()
	if episode == nil {
		return nil, errors.NewServiceUnavailableError("No episode available yet")
	}

	segment := episode.Segment(req.SegmentID)
	if segment == nil {
		return nil, errors.NewNotFoundError("Segment " + req.SegmentID)
	}

	translateCtx, cancel := context.WithTimeout(ctx, config.DefaultTranslationTimeout)
	defer cancel()

	result, err := s.translator.TranslateSegment(translateCtx, segment.Text, req.TargetLanguage)
	if err != nil {
		return nil, errors.NewServiceUnavailableError("Translation failed: " + err.Error())
	}

	return &dto.TranslationResponse{
		SegmentID:        req.SegmentID,
		TargetLanguage:   req.TargetLanguage,
		Original:         result.Original,
		Translation:      result.Translation,
		Notes:            result.Notes,
		DetectedLanguage: result.DetectedLanguage,
	}, nil
}

// SupportedLanguages lists the selectable target languages
func (s *TranslationServiceImpl) SupportedLanguages(_ context.Context) *dto.SupportedLanguagesResponse {
	languages := make([]string, 0, len(model.SupportedLanguages))
	for _, language := range model.SupportedLanguages {
		languages = append(languages, string(language))
	}
	return &dto.SupportedLanguagesResponse{Languages: languages}
}
