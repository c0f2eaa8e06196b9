package api

import (
	"context"

	"suomicast/internal/app/model"
)

// ContentProvider generates the daily bulletin. GenerateDailyEpisode returns
// the episode plus the WAV-framed audio bytes; when speech synthesis fails or
// yields nothing it returns the episode with an empty byte slice and a nil
// error — callers must treat empty audio as "do not persist".
type ContentProvider interface {
	GenerateDailyEpisode(ctx context.Context, dateKey string) (*model.Episode, []byte, error)
}

// Translator translates one transcript segment for a learner. Unlike
// generation, translation failures propagate: the request is a direct
// response to a user action and the client shows an explicit error state.
type Translator interface {
	TranslateSegment(ctx context.Context, text string, targetLanguage string) (*model.TranslationResult, error)
}
