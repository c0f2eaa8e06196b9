// Package gemini implements the content provider on top of the Google Gemini
// API: structured bulletin scripts, multi-speaker speech synthesis and
// on-demand segment translation.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	apperrors "suomicast/internal/app/errors"
	"suomicast/internal/app/metrics"
	"suomicast/internal/app/model"
	"suomicast/internal/app/schedule"
	"suomicast/internal/app/transcript"
	"suomicast/internal/app/wav"
)

const (
	scriptModel = "gemini-3-flash-preview"
	speechModel = "gemini-2.5-flash-preview-tts"

	voiceMale   = "Puck"
	voiceFemale = "Kore"

	scriptTemperature = 0.2
)

// Client wraps the Gemini SDK. Construct with NewClient and pass down as a
// collaborator; there is no package-level singleton.
type Client struct {
	client *genai.Client
	logger *zap.Logger
}

// NewClient builds a Gemini-backed content provider with the given API key.
func NewClient(ctx context.Context, apiKey string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &Client{client: client, logger: logger}, nil
}

// scriptPayload is the JSON shape the script generation call is constrained to.
type scriptPayload struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Transcript  []model.ScriptLine `json:"transcript"`
}

// GenerateDailyEpisode produces the bulletin for one content day. The topic
// and seed are pure functions of the date key, so repeated generation for the
// same day is reproducible where the backend honors seeding.
func (c *Client) GenerateDailyEpisode(ctx context.Context, dateKey string) (*model.Episode, []byte, error) {
	started := time.Now()

	topic, err := schedule.TopicForDate(dateKey)
	if err != nil {
		metrics.GenerationFailuresTotal.Inc()
		return nil, nil, fmt.Errorf("invalid date key %q: %w", dateKey, err)
	}
	seed := schedule.Seed(dateKey)

	payload, err := c.generateScript(ctx, dateKey, topic, seed)
	if err != nil {
		metrics.GenerationFailuresTotal.Inc()
		return nil, nil, apperrors.Wrapf(apperrors.ErrGenerationFailed, "date %s: %v", dateKey, err)
	}

	samples, err := c.synthesizeSpeech(ctx, payload.Transcript)
	if err != nil {
		// Speech failure degrades to an episode with empty audio; the
		// caller must not persist it.
		c.logger.Warn("speech synthesis failed",
			zap.String("date_key", dateKey),
			zap.Error(err))
		metrics.EmptyAudioGenerationsTotal.Inc()
		samples = nil
	}

	episode, audio := assembleEpisode(dateKey, payload, samples)

	if len(audio) > 0 {
		metrics.EpisodesGeneratedTotal.Inc()
	}
	metrics.GenerationDuration.Observe(time.Since(started).Seconds())
	c.logger.Info("daily episode generated",
		zap.String("date_key", dateKey),
		zap.String("topic", topic),
		zap.Int32("seed", seed),
		zap.Int("segments", len(episode.Transcript)),
		zap.Int("audio_bytes", len(audio)))

	return episode, audio, nil
}

func (c *Client) generateScript(ctx context.Context, dateKey, topic string, seed int32) (*scriptPayload, error) {
	prompt := fmt.Sprintf(`You are a professional news anchor for "SuomiCast Uutiset".
Create a daily news bulletin in "Selkosuomi" (Easy Finnish) for %s.

FOCUS TOPIC: %s

Instructions:
- Content must be a NEWS BULLETIN covering 3 short stories.
- Speaker 1: "Uutisankkuri" (News Anchor - Female)
- Speaker 2: "Toimittaja" (Reporter - Male)
- Use clear, simple language suitable for B1 level learners.
- Approximately 15-18 transcript segments.
- In the 'text' field, DO NOT write names like "Uutisankkuri:".

Return JSON:
1. title: A professional news headline in Finnish.
2. description: A summary in English of the 3 news stories covered.
3. transcript: Array of {text, speaker: "Mies" | "Nainen"}.
   Map "Uutisankkuri" to "Nainen" and "Toimittaja" to "Mies".`, dateKey, topic)

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](scriptTemperature),
		Seed:             genai.Ptr[int32](seed),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":       {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
				"transcript": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"text":    {Type: genai.TypeString},
							"speaker": {Type: genai.TypeString, Enum: []string{model.SpeakerMale, model.SpeakerFemale}},
						},
					},
				},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, scriptModel, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("script generation failed: %w", err)
	}

	var payload scriptPayload
	if err := json.Unmarshal([]byte(resp.Text()), &payload); err != nil {
		return nil, fmt.Errorf("malformed script response: %w", err)
	}
	if len(payload.Transcript) == 0 {
		return nil, fmt.Errorf("script response contained no transcript lines")
	}
	return &payload, nil
}

func (c *Client) synthesizeSpeech(ctx context.Context, lines []model.ScriptLine) ([]byte, error) {
	var script strings.Builder
	for i, line := range lines {
		if i > 0 {
			script.WriteByte('\n')
		}
		script.WriteString(line.Speaker)
		script.WriteString(": ")
		script.WriteString(line.Text)
	}
	promptText := fmt.Sprintf(
		"Speak these news reports clearly. Use a professional news tone. Do not say the names %q or %q.\n\n%s",
		model.SpeakerMale, model.SpeakerFemale, script.String())

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			MultiSpeakerVoiceConfig: &genai.MultiSpeakerVoiceConfig{
				SpeakerVoiceConfigs: []*genai.SpeakerVoiceConfig{
					{
						Speaker: model.SpeakerMale,
						VoiceConfig: &genai.VoiceConfig{
							PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voiceMale},
						},
					},
					{
						Speaker: model.SpeakerFemale,
						VoiceConfig: &genai.VoiceConfig{
							PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voiceFemale},
						},
					},
				},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, speechModel, genai.Text(promptText), config)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no audio data returned")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, fmt.Errorf("no audio data returned")
}

// assembleEpisode turns a generated script plus raw PCM samples into the
// final episode and its WAV-framed audio. With no samples, the episode still
// carries the transcript but all segment times collapse to zero and the audio
// slice is empty.
func assembleEpisode(dateKey string, payload *scriptPayload, samples []byte) (*model.Episode, []byte) {
	duration := wav.Duration(len(samples), wav.SampleRate, wav.Channels)
	segments := transcript.Allocate(payload.Transcript, duration)

	episode := &model.Episode{
		ID:          "ep-" + dateKey,
		Title:       payload.Title,
		Description: payload.Description,
		Duration:    model.FormatDuration(duration),
		Transcript:  segments,
	}

	if len(samples) == 0 {
		return episode, []byte{}
	}
	return episode, wav.Encode(samples, wav.SampleRate, wav.Channels)
}

// TranslateSegment translates one transcript line and returns a learner note
// alongside the direct translation. Errors propagate to the caller.
func (c *Client) TranslateSegment(ctx context.Context, text string, targetLanguage string) (*model.TranslationResult, error) {
	if !model.IsSupportedLanguage(targetLanguage) {
		return nil, apperrors.Wrapf(apperrors.ErrUnsupportedLanguage, "%q", targetLanguage)
	}

	prompt := fmt.Sprintf(`Translate the following Finnish text into %s.
Provide the direct translation and a brief grammatical or cultural note to help a language learner.

Text: %q`, targetLanguage, text)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"translation":      {Type: genai.TypeString},
				"notes":            {Type: genai.TypeString},
				"detectedLanguage": {Type: genai.TypeString},
			},
			Required: []string{"translation", "notes"},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, scriptModel, genai.Text(prompt), config)
	if err != nil {
		metrics.TranslationFailuresTotal.Inc()
		return nil, apperrors.Wrapf(apperrors.ErrTranslationFailed, "request: %v", err)
	}

	var parsed struct {
		Translation      string `json:"translation"`
		Notes            string `json:"notes"`
		DetectedLanguage string `json:"detectedLanguage"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &parsed); err != nil {
		metrics.TranslationFailuresTotal.Inc()
		return nil, apperrors.Wrapf(apperrors.ErrTranslationFailed, "malformed response: %v", err)
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
