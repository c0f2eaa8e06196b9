package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"suomicast/internal/api/v1/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	EpisodeService     *MockEpisodeService
	PlayerService      *MockPlayerService
	TranslationService *MockTranslationService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		EpisodeService:     NewMockEpisodeService(t),
		PlayerService:      NewMockPlayerService(t),
		TranslationService: NewMockTranslationService(t),
	}
}

// MockEpisodeService is a mock implementation of EpisodeService
type MockEpisodeService struct {
	mock.Mock
}

func NewMockEpisodeService(t *testing.T) *MockEpisodeService {
	m := &MockEpisodeService{}
	m.Test(t)
	return m
}

func (m *MockEpisodeService) GetCurrent(ctx context.Context) (*dto.CurrentEpisodeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CurrentEpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) GetByDate(ctx context.Context, dateKey string) (*dto.EpisodeResponse, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) ApplyPending(ctx context.Context) (*dto.EpisodeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) SelectEpisode(ctx context.Context, dateKey string) (*dto.EpisodeResponse, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) ListArchive(ctx context.Context) ([]dto.ArchiveItemResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ArchiveItemResponse), args.Error(1)
}

func (m *MockEpisodeService) GetAudio(ctx context.Context, dateKey string) ([]byte, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPlayerService is a mock implementation of PlayerService
type MockPlayerService struct {
	mock.Mock
}

func NewMockPlayerService(t *testing.T) *MockPlayerService {
	m := &MockPlayerService{}
	m.Test(t)
	return m
}

func (m *MockPlayerService) GetState(ctx context.Context) (*dto.PlayerStateResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlayerStateResponse), args.Error(1)
}

func (m *MockPlayerService) UpdateTime(ctx context.Context, req *dto.TimeUpdateRequest) (*dto.PlayerStateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlayerStateResponse), args.Error(1)
}

func (m *MockPlayerService) ClickSegment(ctx context.Context, segmentID string) (*dto.SegmentClickResponse, error) {
	args := m.Called(ctx, segmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SegmentClickResponse), args.Error(1)
}

func (m *MockPlayerService) Seek(ctx context.Context, req *dto.SeekRequest) (*dto.SeekDirectiveResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SeekDirectiveResponse), args.Error(1)
}

func (m *MockPlayerService) ReconcileMediaTime(ctx context.Context, req *dto.MediaTimeRequest) (*dto.ReconcileResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReconcileResponse), args.Error(1)
}

func (m *MockPlayerService) CloseOverlay(ctx context.Context) (*dto.PlayerStateResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlayerStateResponse), args.Error(1)
}

func (m *MockPlayerService) SetPlaying(ctx context.Context, req *dto.PlayingRequest) (*dto.PlayerStateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlayerStateResponse), args.Error(1)
}

func (m *MockPlayerService) SetVolume(ctx context.Context, req *dto.VolumeRequest) (*dto.PlayerStateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PlayerStateResponse), args.Error(1)
}

// MockTranslationService is a mock implementation of TranslationService
type MockTranslationService struct {
	mock.Mock
}

func NewMockTranslationService(t *testing.T) *MockTranslationService {
	m := &MockTranslationService{}
	m.Test(t)
	return m
}

func (m *MockTranslationService) TranslateSegment(ctx context.Context, req *dto.TranslateSegmentRequest) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranslationResponse), args.Error(1)
}

func (m *MockTranslationService) SupportedLanguages(ctx context.Context) *dto.SupportedLanguagesResponse {
	args := m.Called(ctx)
	return args.Get(0).(*dto.SupportedLanguagesResponse)
}
