package services

import (
	"context"

	"suomicast/internal/api/errors"
	"suomicast/internal/api/v1/dto"
	"suomicast/internal/app/player"
)

// PlayerServiceImpl implements PlayerService over the playback synchronizer
type PlayerServiceImpl struct {
	player *player.Player
}

// NewPlayerService creates a new player service
func NewPlayerService(p *player.Player) PlayerService {
	return &PlayerServiceImpl{player: p}
}

func stateResponse(state player.State) *dto.PlayerStateResponse {
	return &dto.PlayerStateResponse{
		IsPlaying:       state.IsPlaying,
		CurrentTime:     state.CurrentTime,
		Volume:          state.Volume,
		ActiveSegmentID: state.ActiveSegmentID,
		OverlayOpen:     state.OverlayOpen,
	}
}

// GetState returns the current synchronizer state
func (s *PlayerServiceImpl) GetState(_ context.Context) (*dto.PlayerStateResponse, error) {
	return stateResponse(s.player.State()), nil
}

// UpdateTime advances the playback clock and recomputes the active segment
func (s *PlayerServiceImpl) UpdateTime(_ context.Context, req *dto.TimeUpdateRequest) (*dto.PlayerStateResponse, error) {
	s.player.UpdateTime(req.CurrentTime)
	return stateResponse(s.player.State()), nil
}

// ClickSegment seeks to a transcript segment and opens the translation overlay
func (s *PlayerServiceImpl) ClickSegment(_ context.Context, segmentID string) (*dto.SegmentClickResponse, error) {
	text, directive, err := s.player.ClickSegment(segmentID)
	if err != nil {
		return nil, errors.NewNotFoundError("Segment " + segmentID)
	}
	return &dto.SegmentClickResponse{
		SegmentID: segmentID,
		Text:      text,
		Directive: dto.SeekDirectiveResponse{SeekTo: directive.SeekTo, Play: directive.Play},
	}, nil
}

// Seek jumps playback to an absolute time
func (s *PlayerServiceImpl) Seek(_ context.Context, req *dto.SeekRequest) (*dto.SeekDirectiveResponse, error) {
	directive := s.player.Seek(req.Time)
	return &dto.SeekDirectiveResponse{SeekTo: directive.SeekTo, Play: directive.Play}, nil
}

// ReconcileMediaTime resolves drift between the media element and the player
func (s *PlayerServiceImpl) ReconcileMediaTime(_ context.Context, req *dto.MediaTimeRequest) (*dto.ReconcileResponse, error) {
	directive := s.player.ReconcileMediaTime(req.ReportedTime)
	if directive == nil {
		return &dto.ReconcileResponse{Adjusted: false}, nil
	}
	return &dto.ReconcileResponse{
		Adjusted:  true,
		Directive: &dto.SeekDirectiveResponse{SeekTo: directive.SeekTo, Play: directive.Play},
	}, nil
}

// CloseOverlay dismisses the translation overlay and resumes highlighting
func (s *PlayerServiceImpl) CloseOverlay(_ context.Context) (*dto.PlayerStateResponse, error) {
	s.player.CloseOverlay()
	return stateResponse(s.player.State()), nil
}

// SetPlaying toggles playback
func (s *PlayerServiceImpl) SetPlaying(_ context.Context, req *dto.PlayingRequest) (*dto.PlayerStateResponse, error) {
	s.player.SetPlaying(*req.Playing)
	return stateResponse(s.player.State()), nil
}

// SetVolume sets the playback volume
func (s *PlayerServiceImpl) SetVolume(_ context.Context, req *dto.VolumeRequest) (*dto.PlayerStateResponse, error) {
	s.player.SetVolume(*req.Volume)
	return stateResponse(s.player.State()), nil
}
