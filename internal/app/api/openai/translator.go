// Package openai provides an alternate segment translator backed by OpenAI
// chat completions, for deployments without a Gemini credential. It cannot
// generate episodes (no multi-speaker speech synthesis), so it only
// implements the Translator side of the provider contract.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	apperrors "suomicast/internal/app/errors"
	"suomicast/internal/app/metrics"
	"suomicast/internal/app/model"
)

// Translator wraps an OpenAI client for segment translation.
type Translator struct {
	client *openai.Client
	model  string
}

// NewTranslator creates a translator with the given API key.
func NewTranslator(apiKey string) *Translator {
	return &Translator{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

// NewTranslatorWithClient wraps an existing client. Used by tests to point at
// a stub server.
func NewTranslatorWithClient(client *openai.Client) *Translator {
	return &Translator{client: client, model: openai.GPT4oMini}
}

// TranslateSegment requests a direct translation plus a short learner note as
// a JSON object. Failures propagate to the caller.
func (t *Translator) TranslateSegment(ctx context.Context, text string, targetLanguage string) (*model.TranslationResult, error) {
	if !model.IsSupportedLanguage(targetLanguage) {
		return nil, apperrors.Wrapf(apperrors.ErrUnsupportedLanguage, "%q", targetLanguage)
	}

	prompt := fmt.Sprintf(`Translate the following Finnish text into %s.
Provide the direct translation and a brief grammatical or cultural note to help a language learner.
Respond with a JSON object: {"translation": string, "notes": string, "detectedLanguage": string}.

Text: %q`, targetLanguage, text)

	request := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := t.client.CreateChatCompletion(ctx, request)
	if err != nil {
		metrics.TranslationFailuresTotal.Inc()
		return nil, apperrors.Wrapf(apperrors.ErrTranslationFailed, "request: %v", err)
	}
	if len(resp.Choices) == 0 {
		metrics.TranslationFailuresTotal.Inc()
		return nil, apperrors.Wrap(apperrors.ErrTranslationFailed, "response contained no choices")
	}

	var parsed struct {
		Translation      string `json:"translation"`
		Notes            string `json:"notes"`
		DetectedLanguage string `json:"detectedLanguage"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		metrics.TranslationFailuresTotal.Inc()
		return nil, apperrors.Wrapf(apperrors.ErrTranslationFailed, "malformed response: %v", err)
	}
	if parsed.Translation == "" {
		metrics.TranslationFailuresTotal.Inc()
		return nil, apperrors.Wrap(apperrors.ErrTranslationFailed, "response missing translation field")
	}
	if parsed.DetectedLanguage == "" {
		parsed.DetectedLanguage = "Finnish"
	}

	metrics.TranslationsTotal.WithLabelValues(targetLanguage).Inc()
	return &model.TranslationResult{
		Original:         text,
		Translation:      parsed.Translation,
		Notes:            parsed.Notes,
		DetectedLanguage: parsed.DetectedLanguage,
	}, nil
}
