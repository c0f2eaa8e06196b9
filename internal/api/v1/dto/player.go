package dto

import (
	"suomicast/internal/api/errors"
)

// TimeUpdateRequest carries the playback clock from the audio element
type TimeUpdateRequest struct {
	CurrentTime float64 `json:"currentTime" binding:"min=0"`
}

// SeekRequest asks the player to jump to an absolute time
type SeekRequest struct {
	Time float64 `json:"time" binding:"min=0"`
}

// MediaTimeRequest reports the media element's position for reconciliation
type MediaTimeRequest struct {
	ReportedTime float64 `json:"reportedTime" binding:"min=0"`
}

// PlayingRequest toggles playback
type PlayingRequest struct {
	Playing *bool `json:"playing" binding:"required"`
}

// VolumeRequest sets the playback volume
type VolumeRequest struct {
	Volume *float64 `json:"volume" binding:"required"`
}

// Validate performs domain-specific validation
func (r *VolumeRequest) Validate() error {
	if r.Volume != nil && (*r.Volume < 0 || *r.Volume > 1) {
		return errors.NewValidationError("Invalid volume", map[string]string{
			"volume": "must be between 0 and 1",
		})
	}
	return nil
}

// PlayerStateResponse mirrors the synchronizer state
type PlayerStateResponse struct {
	IsPlaying       bool    `json:"isPlaying"`
	CurrentTime     float64 `json:"currentTime"`
	Volume          float64 `json:"volume"`
	ActiveSegmentID string  `json:"activeSegmentId,omitempty"`
	OverlayOpen     bool    `json:"overlayOpen"`
}

// SeekDirectiveResponse tells the media element where to go
type SeekDirectiveResponse struct {
	SeekTo float64 `json:"seekTo"`
	Play   bool    `json:"play"`
}

// SegmentClickResponse is the outcome of tapping a transcript segment
type SegmentClickResponse struct {
	SegmentID string                `json:"segmentId"`
	Text      string                `json:"text"`
	Directive SeekDirectiveResponse `json:"directive"`
}

// ReconcileResponse reports whether the media element must be corrected.
// Directive is null when the reported time was adopted as truth.
type ReconcileResponse struct {
	Adjusted  bool                   `json:"adjusted"`
	Directive *SeekDirectiveResponse `json:"directive,omitempty"`
}
