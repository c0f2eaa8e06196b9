// Package player keeps the authoritative playback position and maps it to the
// active transcript segment (and back, for click-to-seek).
package player

import (
	"fmt"
	"sync"

	apperrors "suomicast/internal/app/errors"
	"suomicast/internal/app/metrics"
	"suomicast/internal/app/model"
	"suomicast/internal/app/transcript"
)

// DriftTolerance is the maximum allowed gap in seconds between the medium's
// reported position and the authoritative time before the medium is forced
// back in sync. It absorbs the medium's natural time-update granularity so
// reconciliation does not feed back on itself.
const DriftTolerance = 0.5

// State is a snapshot of the synchronizer for presentation.
type State struct {
	IsPlaying       bool    `json:"isPlaying"`
	CurrentTime     float64 `json:"currentTime"`
	Volume          float64 `json:"volume"`
	ActiveSegmentID string  `json:"activeSegmentId,omitempty"`
	OverlayOpen     bool    `json:"overlayOpen"`
}

// SeekDirective tells the medium to jump and resume playback.
type SeekDirective struct {
	SeekTo float64 `json:"seekTo"`
	Play   bool    `json:"play"`
}

// Player owns the single authoritative current-time value for the episode
// being shown. All methods are safe for concurrent use.
type Player struct {
	mu          sync.Mutex
	episode     *model.Episode
	currentTime float64
	isPlaying   bool
	volume      float64
	activeID    string
	overlayOpen bool
}

func New() *Player {
	return &Player{volume: 1.0}
}

// SetEpisode swaps the loaded episode and resets playback to the beginning.
// The translation overlay is closed; a stale overlay refers to a segment of
// the previous episode.
func (p *Player) SetEpisode(episode *model.Episode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.episode = episode
	p.currentTime = 0
	p.isPlaying = false
	p.activeID = ""
	p.overlayOpen = false
}

// State returns a snapshot of the current synchronizer state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State{
		IsPlaying:       p.isPlaying,
		CurrentTime:     p.currentTime,
		Volume:          p.volume,
		ActiveSegmentID: p.activeID,
		OverlayOpen:     p.overlayOpen,
	}
}

// UpdateTime advances the authoritative time from the playing medium and
// recomputes the active segment. While the translation overlay is open the
// clicked segment stays active regardless of playback position.
func (p *Player) UpdateTime(t float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentTime = t
	p.refreshActiveLocked()
}

func (p *Player) refreshActiveLocked() {
	if p.episode == nil || p.overlayOpen {
		return
	}
	if seg := transcript.ActiveSegment(p.episode.Transcript, p.currentTime); seg != nil {
		p.activeID = seg.ID
	}
}

// ClickSegment seeks to the clicked segment's start, marks it active
// immediately (bypassing the interval search) and opens the translation
// overlay. It returns the segment text for the follow-up translation request
// and a directive forcing the medium to the new position.
func (p *Player) ClickSegment(segmentID string) (string, SeekDirective, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.episode == nil {
		return "", SeekDirective{}, fmt.Errorf("no episode loaded")
	}
	seg := p.episode.Segment(segmentID)
	if seg == nil {
		return "", SeekDirective{}, apperrors.Wrapf(apperrors.ErrSegmentNotFound, "unknown segment %q", segmentID)
	}

	p.currentTime = seg.StartTime
	p.activeID = seg.ID
	p.overlayOpen = true
	p.isPlaying = true
	metrics.SegmentClicksTotal.Inc()

	return seg.Text, SeekDirective{SeekTo: seg.StartTime, Play: true}, nil
}

// Seek moves the authoritative time to an arbitrary position (progress-bar
// drag) and returns the directive for the medium.
func (p *Player) Seek(t float64) SeekDirective {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentTime = t
	p.isPlaying = true
	p.refreshActiveLocked()
	return SeekDirective{SeekTo: t, Play: true}
}

// ReconcileMediaTime folds the medium's reported position back into the
// authoritative value. Within the drift tolerance the report is adopted as
// normal playback progress; beyond it the medium is forced to the
// authoritative position and playback is (re)started.
func (p *Player) ReconcileMediaTime(reported float64) *SeekDirective {
	p.mu.Lock()
	defer p.mu.Unlock()

	drift := reported - p.currentTime
	if drift < 0 {
		drift = -drift
	}
	if drift > DriftTolerance {
		p.isPlaying = true
		return &SeekDirective{SeekTo: p.currentTime, Play: true}
	}

	p.currentTime = reported
	p.refreshActiveLocked()
	return nil
}

// CloseOverlay dismisses the translation overlay and lets automatic
// active-segment tracking resume.
func (p *Player) CloseOverlay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overlayOpen = false
	p.refreshActiveLocked()
}

// SetPlaying toggles play/pause state reported by the medium.
func (p *Player) SetPlaying(playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.isPlaying = playing
}

// SetVolume stores the presentation volume (0..1).
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.volume = volume
}
