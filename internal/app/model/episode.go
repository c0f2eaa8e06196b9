package model

import "fmt"

// Speaker roles used in generated bulletin scripts. The generation prompt maps
// the news anchor to "Nainen" and the reporter to "Mies".
const (
	SpeakerMale   = "Mies"
	SpeakerFemale = "Nainen"
)

// TranscriptSegment is a single spoken line of an episode. The time interval is
// half-open: a segment is active for currentTime in [StartTime, EndTime).
type TranscriptSegment struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Text      string  `json:"text"`
}

// Contains reports whether t falls inside the segment's interval.
func (s TranscriptSegment) Contains(t float64) bool {
	return t >= s.StartTime && t < s.EndTime
}

// Episode is a single daily news bulletin. Episodes are immutable once
// created; a new bulletin is a new Episode. AudioURL is a transient serving
// handle and is never persisted.
type Episode struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	AudioURL    string              `json:"audioUrl,omitempty"`
	Duration    string              `json:"duration"`
	Transcript  []TranscriptSegment `json:"transcript"`
}

// Segment returns the transcript segment with the given id, or nil.
func (e *Episode) Segment(id string) *TranscriptSegment {
	for i := range e.Transcript {
		if e.Transcript[i].ID == id {
			return &e.Transcript[i]
		}
	}
	return nil
}

// WithoutAudioURL returns a copy of the episode with the transient audio
// handle stripped, suitable for persistence.
func (e Episode) WithoutAudioURL() Episode {
	e.AudioURL = ""
	return e
}

// StoredEpisode is the persisted record for one calendar day: the episode
// metadata (without a live audio handle) plus the raw WAV bytes.
type StoredEpisode struct {
	DateKey   string  `json:"dateKey"`
	Episode   Episode `json:"episode"`
	AudioData []byte  `json:"-"`
}

// ScriptLine is one speaker-tagged line of a generated bulletin script,
// before segment times are allocated.
type ScriptLine struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// FormatDuration renders a duration in seconds as the human readable "M:SS"
// string carried by Episode.Duration.
func FormatDuration(totalSeconds float64) string {
	mins := int(totalSeconds) / 60
	secs := int(totalSeconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
