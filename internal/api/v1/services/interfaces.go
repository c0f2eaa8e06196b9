package services

import (
	"context"

	"suomicast/internal/api/v1/dto"
)

// EpisodeService defines the interface for episode operations
type EpisodeService interface {
	GetCurrent(ctx context.Context) (*dto.CurrentEpisodeResponse, error)
	GetByDate(ctx context.Context, dateKey string) (*dto.EpisodeResponse, error)
	ApplyPending(ctx context.Context) (*dto.EpisodeResponse, error)
	SelectEpisode(ctx context.Context, dateKey string) (*dto.EpisodeResponse, error)
	ListArchive(ctx context.Context) ([]dto.ArchiveItemResponse, error)
	GetAudio(ctx context.Context, dateKey string) ([]byte, error)
}

// PlayerService defines the interface for playback synchronizer operations
type PlayerService interface {
	GetState(ctx context.Context) (*dto.PlayerStateResponse, error)
	UpdateTime(ctx context.Context, req *dto.TimeUpdateRequest) (*dto.PlayerStateResponse, error)
	ClickSegment(ctx context.Context, segmentID string) (*dto.SegmentClickResponse, error)
	Seek(ctx context.Context, req *dto.SeekRequest) (*dto.SeekDirectiveResponse, error)
	ReconcileMediaTime(ctx context.Context, req *dto.MediaTimeRequest) (*dto.ReconcileResponse, error)
	CloseOverlay(ctx context.Context) (*dto.PlayerStateResponse, error)
	SetPlaying(ctx context.Context, req *dto.PlayingRequest) (*dto.PlayerStateResponse, error)
	SetVolume(ctx context.Context, req *dto.VolumeRequest) (*dto.PlayerStateResponse, error)
}

// TranslationService defines the interface for segment translation
type TranslationService interface {
	TranslateSegment(ctx context.Context, req *dto.TranslateSegmentRequest) (*dto.TranslationResponse, error)
	SupportedLanguages(ctx context.Context) *dto.SupportedLanguagesResponse
}
