package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "suomicast/internal/app/errors"
)

func newStubTranslator(t *testing.T, handler http.HandlerFunc) *Translator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return NewTranslatorWithClient(openai.NewClientWithConfig(config))
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

func TestTranslateSegment(t *testing.T) {
	translator := newStubTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse(
			`{"translation":"Welcome.","notes":"Tervetuloa is a fixed greeting.","detectedLanguage":"Finnish"}`))
	})

	result, err := translator.TranslateSegment(context.Background(), "Tervetuloa.", "English")
	require.NoError(t, err)
	assert.Equal(t, "Tervetuloa.", result.Original)
	assert.Equal(t, "Welcome.", result.Translation)
	assert.Equal(t, "Tervetuloa is a fixed greeting.", result.Notes)
	assert.Equal(t, "Finnish", result.DetectedLanguage)
}

func TestTranslateSegmentIndependentResults(t *testing.T) {
	responses := map[string]string{
		"English": `{"translation":"Good day.","notes":"Standard greeting."}`,
		"German":  `{"translation":"Guten Tag.","notes":"Übliche Begrüßung."}`,
	}
	calls := 0
	translator := newStubTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		for lang, body := range responses {
			if len(req.Messages) == 1 && strings.Contains(req.Messages[0].Content, lang) {
				json.NewEncoder(w).Encode(chatResponse(body))
				return
			}
		}
		t.Fatalf("unexpected request: %+v", req)
	})

	first, err := translator.TranslateSegment(context.Background(), "Hyvää päivää.", "English")
	require.NoError(t, err)
	second, err := translator.TranslateSegment(context.Background(), "Hyvää päivää.", "German")
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "results are never cached; each request hits the provider")
	assert.Equal(t, first.Original, second.Original)
	assert.NotEqual(t, first.Translation, second.Translation)
	assert.Equal(t, "Finnish", first.DetectedLanguage, "detected language defaults when the provider omits it")
}

func TestTranslateSegmentPropagatesFailure(t *testing.T) {
	translator := newStubTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	})

	_, err := translator.TranslateSegment(context.Background(), "Moi.", "English")
	assert.Error(t, err, "translation failures are surfaced, never swallowed")
}

func TestTranslateSegmentRejectsMalformedJSON(t *testing.T) {
	translator := newStubTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse("not json at all"))
	})

	_, err := translator.TranslateSegment(context.Background(), "Moi.", "English")
	assert.Error(t, err)
}

func TestTranslateSegmentRejectsUnknownLanguage(t *testing.T) {
	translator := NewTranslator("sk-test")
	_, err := translator.TranslateSegment(context.Background(), "Moi.", "Klingon")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedLanguage)
}
