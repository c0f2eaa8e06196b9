package dto

import (
	"regexp"

	"suomicast/internal/api/errors"
	"suomicast/internal/app/model"
)

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDateKey checks the YYYY-MM-DD path parameter
func ValidateDateKey(dateKey string) error {
	if !dateKeyPattern.MatchString(dateKey) {
		return errors.NewBadRequestError("Invalid date key, expected YYYY-MM-DD")
	}
	return nil
}

// SegmentResponse represents one transcript segment in API responses
type SegmentResponse struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Text      string  `json:"text"`
}

// EpisodeResponse represents an episode in API responses
type EpisodeResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AudioURL    string            `json:"audioUrl,omitempty"`
	Duration    string            `json:"duration"`
	Transcript  []SegmentResponse `json:"transcript"`
}

// CurrentEpisodeResponse is the displayed episode plus refresh state
type CurrentEpisodeResponse struct {
	Episode          EpisodeResponse `json:"episode"`
	PendingAvailable bool            `json:"pendingAvailable"`
}

// ArchiveItemResponse is one entry of the episode archive listing
type ArchiveItemResponse struct {
	DateKey     string `json:"dateKey"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// EpisodeFromModel maps a model episode into its API representation
func EpisodeFromModel(episode *model.Episode) EpisodeResponse {
	segments := make([]SegmentResponse, 0, len(episode.Transcript))
	for _, segment := range episode.Transcript {
		segments = append(segments, SegmentResponse{
			ID:        segment.ID,
			StartTime: segment.StartTime,
			EndTime:   segment.EndTime,
			Text:      segment.Text,
		})
	}
	return EpisodeResponse{
		ID:          episode.ID,
		Title:       episode.Title,
		Description: episode.Description,
		AudioURL:    episode.AudioURL,
		Duration:    episode.Duration,
		Transcript:  segments,
	}
}
