package generate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"suomicast/internal/app/model"
)

type fakeDAO struct {
	episodes map[string]model.StoredEpisode
	saveErr  error
}

func newFakeDAO() *fakeDAO {
	return &fakeDAO{episodes: make(map[string]model.StoredEpisode)}
}

func (d *fakeDAO) Close() error { return nil }

func (d *fakeDAO) Get(dateKey string) (*model.StoredEpisode, error) {
	stored, ok := d.episodes[dateKey]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

func (d *fakeDAO) GetAll() ([]model.StoredEpisode, error)   { return nil, nil }
func (d *fakeDAO) GetLatest() (*model.StoredEpisode, error) { return nil, nil }

func (d *fakeDAO) Save(dateKey string, episode model.Episode, audioData []byte) error {
	if d.saveErr != nil {
		return d.saveErr
	}
	d.episodes[dateKey] = model.StoredEpisode{DateKey: dateKey, Episode: episode, AudioData: audioData}
	return nil
}

type scriptedProvider struct {
	audioByKey map[string][]byte
	errByKey   map[string]error
	calls      []string
}

func (p *scriptedProvider) GenerateDailyEpisode(_ context.Context, dateKey string) (*model.Episode, []byte, error) {
	p.calls = append(p.calls, dateKey)
	if err := p.errByKey[dateKey]; err != nil {
		return nil, nil, err
	}
	audio, ok := p.audioByKey[dateKey]
	if !ok {
		audio = []byte{1}
	}
	return &model.Episode{ID: "ep-" + dateKey, Title: "Jakso " + dateKey}, audio, nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	}
}

func TestRunGeneratesNewestFirst(t *testing.T) {
	dao := newFakeDAO()
	provider := &scriptedProvider{}
	b := NewBackfiller(provider, dao, zap.NewNop()).WithClock(fixedClock())

	result, err := b.Run(context.Background(), 3, false, ProgressConfig{})
	require.NoError(t, err)

	assert.Equal(t, Result{Generated: 3}, result)
	assert.Equal(t, []string{"2025-03-10", "2025-03-09", "2025-03-08"}, provider.calls)
	assert.Len(t, dao.episodes, 3)
}

func TestRunSkipsExistingUnlessForced(t *testing.T) {
	dao := newFakeDAO()
	require.NoError(t, dao.Save("2025-03-10", model.Episode{ID: "ep-old"}, []byte{9}))
	provider := &scriptedProvider{}
	b := NewBackfiller(provider, dao, zap.NewNop()).WithClock(fixedClock())

	result, err := b.Run(context.Background(), 2, false, ProgressConfig{})
	require.NoError(t, err)
	assert.Equal(t, Result{Generated: 1, Skipped: 1}, result)
	assert.Equal(t, []string{"2025-03-09"}, provider.calls)

	provider.calls = nil
	result, err = b.Run(context.Background(), 2, true, ProgressConfig{})
	require.NoError(t, err)
	assert.Equal(t, Result{Generated: 2}, result)
	assert.Equal(t, []string{"2025-03-10", "2025-03-09"}, provider.calls)
}

func TestRunCountsFailuresAndEmptyAudio(t *testing.T) {
	dao := newFakeDAO()
	provider := &scriptedProvider{
		errByKey:   map[string]error{"2025-03-10": errors.New("quota")},
		audioByKey: map[string][]byte{"2025-03-09": {}},
	}
	b := NewBackfiller(provider, dao, zap.NewNop()).WithClock(fixedClock())

	result, err := b.Run(context.Background(), 3, false, ProgressConfig{})
	require.NoError(t, err)
	assert.Equal(t, Result{Generated: 1, Failed: 2}, result)

	// Neither the failed day nor the empty-audio day was persisted.
	stored, _ := dao.Get("2025-03-10")
	assert.Nil(t, stored)
	stored, _ = dao.Get("2025-03-09")
	assert.Nil(t, stored)
	stored, _ = dao.Get("2025-03-08")
	assert.NotNil(t, stored)
}

type flakyProvider struct {
	scriptedProvider
	failuresLeft int
}

func (p *flakyProvider) GenerateDailyEpisode(ctx context.Context, dateKey string) (*model.Episode, []byte, error) {
	if p.failuresLeft > 0 {
		p.failuresLeft--
		p.calls = append(p.calls, dateKey)
		return nil, nil, errors.New("transient")
	}
	return p.scriptedProvider.GenerateDailyEpisode(ctx, dateKey)
}

func TestRunRetriesTransientFailures(t *testing.T) {
	dao := newFakeDAO()
	provider := &flakyProvider{failuresLeft: 1}
	b := NewBackfiller(provider, dao, zap.NewNop()).
		WithClock(fixedClock()).
		WithRetryPolicy(1, 0)

	result, err := b.Run(context.Background(), 1, false, ProgressConfig{})
	require.NoError(t, err)
	assert.Equal(t, Result{Generated: 1}, result)
	assert.Equal(t, []string{"2025-03-10", "2025-03-10"}, provider.calls)
}

func TestRunExhaustsRetriesThenFails(t *testing.T) {
	dao := newFakeDAO()
	provider := &scriptedProvider{
		errByKey: map[string]error{"2025-03-10": errors.New("quota")},
	}
	b := NewBackfiller(provider, dao, zap.NewNop()).
		WithClock(fixedClock()).
		WithRetryPolicy(2, 0)

	result, err := b.Run(context.Background(), 1, false, ProgressConfig{})
	require.NoError(t, err)
	assert.Equal(t, Result{Failed: 1}, result)
	assert.Len(t, provider.calls, 3)
}

func TestRunRejectsBadDayCount(t *testing.T) {
	b := NewBackfiller(&scriptedProvider{}, newFakeDAO(), zap.NewNop())
	_, err := b.Run(context.Background(), 0, false, ProgressConfig{})
	assert.Error(t, err)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	dao := newFakeDAO()
	provider := &scriptedProvider{}
	b := NewBackfiller(provider, dao, zap.NewNop()).WithClock(fixedClock())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Run(ctx, 5, false, ProgressConfig{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, provider.calls)
}
