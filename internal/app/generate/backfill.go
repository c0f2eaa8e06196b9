// Package generate runs ahead-of-time episode generation so the server can
// answer from cache.
package generate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"suomicast/internal/app/api"
	apperrors "suomicast/internal/app/errors"
	"suomicast/internal/app/model"
	"suomicast/internal/app/repository"
	"suomicast/internal/app/schedule"
	"suomicast/internal/config"
)

// Result summarizes a backfill run
type Result struct {
	Generated int
	Skipped   int
	Failed    int
}

// Backfiller generates and persists episodes for a range of date keys,
// newest first.
type Backfiller struct {
	provider   api.ContentProvider
	dao        repository.EpisodeDAO
	logger     *zap.Logger
	clock      func() time.Time
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
}

// NewBackfiller creates a backfiller
func NewBackfiller(provider api.ContentProvider, dao repository.EpisodeDAO, logger *zap.Logger) *Backfiller {
	return &Backfiller{
		provider:   provider,
		dao:        dao,
		logger:     logger,
		clock:      time.Now,
		timeout:    config.DefaultGenerationTimeout,
		retryDelay: config.DefaultRetryDelayMs * time.Millisecond,
	}
}

// WithClock overrides the wall clock. Used by tests.
func (b *Backfiller) WithClock(clock func() time.Time) *Backfiller {
	b.clock = clock
	return b
}

// WithTimeout bounds each generation attempt.
func (b *Backfiller) WithTimeout(timeout time.Duration) *Backfiller {
	b.timeout = timeout
	return b
}

// WithRetryPolicy sets how many times a failed generation is retried and the
// delay between attempts.
func (b *Backfiller) WithRetryPolicy(retries int, delay time.Duration) *Backfiller {
	b.retries = retries
	b.retryDelay = delay
	return b
}

// Run generates episodes for the last days content days, starting from the
// current effective date. Existing episodes are skipped unless force is set;
// per-day failures are counted, not fatal. Generation is sequential to stay
// inside provider rate limits.
func (b *Backfiller) Run(ctx context.Context, days int, force bool, progressConfig ProgressConfig) (Result, error) {
	if days < 1 {
		return Result{}, fmt.Errorf("days must be at least 1")
	}

	base, err := time.Parse(schedule.DateKeyLayout, schedule.EffectiveDateKey(b.clock()))
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve effective date: %w", err)
	}

	progress := NewProgressManager(progressConfig)
	defer progress.Shutdown()
	bar := progress.CreateBar(days, "Generating episodes")

	var result Result
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		dateKey := base.AddDate(0, 0, -i).Format(schedule.DateKeyLayout)

		if !force {
			stored, err := b.dao.Get(dateKey)
			if err == nil && stored != nil {
				b.logger.Info("episode already stored, skipping", zap.String("date_key", dateKey))
				result.Skipped++
				bar.Increment()
				continue
			}
		}

		episode, audio, err := b.generateWithRetries(ctx, dateKey)
		if err != nil {
			b.logger.Warn("generation failed", zap.String("date_key", dateKey), zap.Error(err))
			result.Failed++
			bar.Increment()
			continue
		}
		if len(audio) == 0 {
			b.logger.Warn("empty audio, not persisting",
				zap.String("date_key", dateKey),
				zap.Error(apperrors.ErrEmptyAudio))
			result.Failed++
			bar.Increment()
			continue
		}

		if err := b.dao.Save(dateKey, *episode, audio); err != nil {
			b.logger.Warn("failed to persist episode", zap.String("date_key", dateKey), zap.Error(err))
			result.Failed++
			bar.Increment()
			continue
		}

		b.logger.Info("episode generated",
			zap.String("date_key", dateKey),
			zap.String("title", episode.Title))
		result.Generated++
		bar.Increment()
	}

	bar.Complete()
	progress.Wait()
	return result, nil
}

// generateWithRetries runs one bounded attempt per try, retrying up to the
// configured count. It stops early when the parent context is cancelled.
func (b *Backfiller) generateWithRetries(ctx context.Context, dateKey string) (*model.Episode, []byte, error) {
	var lastErr error
	for attempt := 0; attempt <= b.retries; attempt++ {
		if attempt > 0 {
			b.logger.Info("retrying generation",
				zap.String("date_key", dateKey),
				zap.Int("attempt", attempt+1))
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case <-time.After(b.retryDelay):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, b.timeout)
		episode, audio, err := b.provider.GenerateDailyEpisode(attemptCtx, dateKey)
		cancel()
		if err == nil {
			return episode, audio, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
	}
	return nil, nil, lastErr
}
