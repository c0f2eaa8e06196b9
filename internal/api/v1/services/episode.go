package services

import (
	"context"

	"suomicast/internal/api/errors"
	"suomicast/internal/api/v1/dto"
	"suomicast/internal/app/refresh"
)

// EpisodeServiceImpl implements EpisodeService on top of the refresh
// controller.
type EpisodeServiceImpl struct {
	controller *refresh.Controller
}

// NewEpisodeService creates a new episode service
func NewEpisodeService(controller *refresh.Controller) EpisodeService {
	return &EpisodeServiceImpl{controller: controller}
}

// GetCurrent returns the displayed episode and whether a newer one is staged
func (s *EpisodeServiceImpl) GetCurrent(_ context.Context) (*dto.CurrentEpisodeResponse, error) {
	episode, pending := s.controller.Displayed()
	if episode == nil {
		return nil, errors.NewServiceUnavailableError("No episode available yet")
	}
	return &dto.CurrentEpisodeResponse{
		Episode:          dto.EpisodeFromModel(episode),
		PendingAvailable: pending,
	}, nil
}

// GetByDate returns the stored episode metadata for a date key
func (s *EpisodeServiceImpl) GetByDate(_ context.Context, dateKey string) (*dto.EpisodeResponse, error) {
	for _, entry := range s.controller.Archive() {
		if entry.DateKey == dateKey {
			response := dto.EpisodeFromModel(&entry.Episode)
			return &response, nil
		}
	}
	return nil, errors.NewNotFoundError("Episode " + dateKey)
}

// ApplyPending swaps the staged episode in and resets playback
func (s *EpisodeServiceImpl) ApplyPending(_ context.Context) (*dto.EpisodeResponse, error) {
	episode, err := s.controller.ApplyPending()
	if err != nil {
		return nil, errors.NewConflictError("No pending episode to apply")
	}
	response := dto.EpisodeFromModel(episode)
	return &response, nil
}

// SelectEpisode switches playback to an archived episode
func (s *EpisodeServiceImpl) SelectEpisode(_ context.Context, dateKey string) (*dto.EpisodeResponse, error) {
	episode, err := s.controller.SelectEpisode(dateKey)
	if err != nil {
		return nil, errors.NewNotFoundError("Episode " + dateKey)
	}
	response := dto.EpisodeFromModel(episode)
	return &response, nil
}

// ListArchive returns stored episode metadata, newest first
func (s *EpisodeServiceImpl) ListArchive(_ context.Context) ([]dto.ArchiveItemResponse, error) {
	entries := s.controller.Archive()
	items := make([]dto.ArchiveItemResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.ArchiveItemResponse{
			DateKey:     entry.DateKey,
			Title:       entry.Episode.Title,
			Description: entry.Episode.Description,
			Duration:    entry.Episode.Duration,
		})
	}
	return items, nil
}

// GetAudio returns the stored WAV payload for a date key
func (s *EpisodeServiceImpl) GetAudio(_ context.Context, dateKey string) ([]byte, error) {
	audio, err := s.controller.AudioFor(dateKey)
	if err != nil {
		return nil, errors.NewNotFoundError("Audio for " + dateKey)
	}
	return audio, nil
}
