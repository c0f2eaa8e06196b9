package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "suomicast/internal/app/errors"
	"suomicast/internal/app/model"
	"suomicast/internal/app/wav"
)

func TestAssembleEpisodeWithAudio(t *testing.T) {
	payload := &scriptPayload{
		Title:       "Sää kylmenee",
		Description: "Weather turns cold across the country.",
		Transcript: []model.ScriptLine{
			{Text: "Hyvää iltaa.", Speaker: model.SpeakerFemale},
			{Text: "Sää kylmenee ensi viikolla koko maassa.", Speaker: model.SpeakerMale},
		},
	}
	// 3 seconds of silence at 24 kHz mono s16le.
	samples := make([]byte, 3*wav.SampleRate*wav.BytesPerSample)

	episode, audio := assembleEpisode("2026-08-29", payload, samples)

	assert.Equal(t, "ep-2026-08-29", episode.ID)
	assert.Equal(t, "Sää kylmenee", episode.Title)
	assert.Equal(t, "0:03", episode.Duration)
	require.Len(t, episode.Transcript, 2)
	assert.Equal(t, 0.0, episode.Transcript[0].StartTime)
	assert.InDelta(t, 3.0, episode.Transcript[1].EndTime, 0.01)

	require.Len(t, audio, 44+len(samples))
	decoded, err := wav.SampleData(audio)
	require.NoError(t, err)
	assert.Equal(t, samples, decoded)
}

func TestAssembleEpisodeWithoutAudio(t *testing.T) {
	payload := &scriptPayload{
		Title: "Uutiset",
		Transcript: []model.ScriptLine{
			{Text: "Tervetuloa.", Speaker: model.SpeakerFemale},
		},
	}

	episode, audio := assembleEpisode("2026-08-29", payload, nil)

	assert.Empty(t, audio, "empty audio must stay empty so callers skip persistence")
	assert.Equal(t, "0:00", episode.Duration)
	require.Len(t, episode.Transcript, 1)
	assert.Equal(t, 0.0, episode.Transcript[0].EndTime)
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", nil)
	assert.Error(t, err)
}

func TestTranslateSegmentRejectsUnknownLanguage(t *testing.T) {
	c := &Client{}
	_, err := c.TranslateSegment(context.Background(), "Hyvää huomenta.", "Klingon")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedLanguage)
}
