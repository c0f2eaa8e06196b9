package testutil

import (
	"fmt"
	"testing"

	"suomicast/internal/app/model"
)

// SampleEpisode builds a small Finnish episode for the given date key with
// a two-segment transcript.
func SampleEpisode(dateKey string) model.Episode {
	return model.Episode{
		ID:          "ep-" + dateKey,
		Title:       "Päivän uutiset " + dateKey,
		Description: "Lyhyt katsaus päivän uutisiin.",
		Duration:    "1:30",
		Transcript: []model.TranscriptSegment{
			{ID: "seg-0", StartTime: 0, EndTime: 45.5, Text: "Hyvää huomenta Suomesta."},
			{ID: "seg-1", StartTime: 45.5, EndTime: 90, Text: "Sää on tänään kylmä mutta aurinkoinen."},
		},
	}
}

// SampleArchive builds n stored episodes with non-empty audio, counting back
// one day at a time from 2025-03-10, newest first.
func SampleArchive(t *testing.T, n int) []model.StoredEpisode {
	t.Helper()
	episodes := make([]model.StoredEpisode, 0, n)
	for i := 0; i < n; i++ {
		dateKey := fmt.Sprintf("2025-03-%02d", 10-i)
		episodes = append(episodes, model.StoredEpisode{
			DateKey:   dateKey,
			Episode:   SampleEpisode(dateKey),
			AudioData: []byte("RIFF" + dateKey),
		})
	}
	return episodes
}
