// Package refresh orchestrates the daily episode flow: present whatever is
// cached first, reconcile with freshly generated content in the background,
// and let the listener opt into switching. Nothing in here is ever fatal; the
// worst case outcome is the built-in sample episode.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"suomicast/internal/app/api"
	apperrors "suomicast/internal/app/errors"
	"suomicast/internal/app/metrics"
	"suomicast/internal/app/model"
	"suomicast/internal/app/player"
	"suomicast/internal/app/repository"
	"suomicast/internal/app/schedule"
	"suomicast/internal/config"
)

// Event types published to subscribers.
const (
	EventEpisodeAvailable = "episode_available"
	EventEpisodeApplied   = "episode_applied"
)

// Event announces a refresh-controller state change to subscribers.
type Event struct {
	Type    string `json:"type"`
	DateKey string `json:"dateKey,omitempty"`
	Title   string `json:"title,omitempty"`
}

// ArchiveEntry is one stored episode's metadata for listings, without the
// audio payload.
type ArchiveEntry struct {
	DateKey string        `json:"dateKey"`
	Episode model.Episode `json:"episode"`
}

// Controller implements the stale-while-revalidate refresh flow as an
// explicit two-phase state: the displayed episode and, separately, a pending
// one the listener may switch to. The switch is atomic and observable.
type Controller struct {
	dao      repository.EpisodeDAO
	provider api.ContentProvider // nil selects fallback-content mode
	player   *player.Player
	logger   *zap.Logger
	clock    func() time.Time

	mu           sync.Mutex
	started      bool
	displayed    *model.Episode
	displayedKey string
	pending      *model.Episode
	pendingKey   string
	archive      []ArchiveEntry

	subMu       sync.Mutex
	subscribers map[chan Event]struct{}
}

// NewController wires the store, the (optional) content provider and the
// playback synchronizer together.
func NewController(dao repository.EpisodeDAO, provider api.ContentProvider, p *player.Player, logger *zap.Logger) *Controller {
	return &Controller{
		dao:         dao,
		provider:    provider,
		player:      p,
		logger:      logger,
		clock:       time.Now,
		subscribers: make(map[chan Event]struct{}),
	}
}

// WithClock overrides the wall clock. Used by tests.
func (c *Controller) WithClock(clock func() time.Time) *Controller {
	c.clock = clock
	return c
}

// Start runs one refresh cycle: resolve the effective date key, present the
// best cached episode immediately, then reconcile with generated content in
// the background. At most one cycle runs per controller; repeated calls are
// no-ops, so there is never more than one generation request in flight.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	dateKey := schedule.EffectiveDateKey(c.clock())
	c.refreshArchive()

	if cached := c.lookup(dateKey); cached != nil {
		c.present(cached.Episode, cached.DateKey, "cache")
		return
	}

	placeholderShown := false
	if latest := c.latest(); latest != nil {
		c.present(latest.Episode, latest.DateKey, "placeholder")
		placeholderShown = true
	} else if c.provider == nil {
		c.present(model.FallbackEpisode(), "", "fallback")
		return
	} else {
		// Nothing cached yet; show the sample while generation runs.
		c.present(model.FallbackEpisode(), "", "fallback")
	}

	if c.provider == nil {
		return
	}

	go c.reconcile(ctx, dateKey, placeholderShown)
}

// reconcile is the background half of the cycle. Results land last-write-wins
// with no cancellation; a listener who navigated away simply finds the new
// state on the next look.
func (c *Controller) reconcile(ctx context.Context, dateKey string, placeholderShown bool) {
	genCtx, cancel := context.WithTimeout(ctx, config.DefaultGenerationTimeout)
	defer cancel()

	episode, audio, err := c.provider.GenerateDailyEpisode(genCtx, dateKey)
	if err != nil {
		c.logger.Warn("daily generation failed; keeping current episode",
			zap.String("date_key", dateKey),
			zap.Error(err))
		c.ensureDisplayed()
		return
	}

	if len(audio) == 0 {
		// Do not persist and do not announce; the placeholder (or sample)
		// stays up.
		c.logger.Warn("generation returned empty audio; discarding",
			zap.String("date_key", dateKey),
			zap.Error(apperrors.ErrEmptyAudio))
		c.ensureDisplayed()
		return
	}

	if err := c.dao.Save(dateKey, *episode, audio); err != nil {
		c.logger.Warn("failed to persist generated episode",
			zap.String("date_key", dateKey),
			zap.Error(err))
	}
	c.refreshArchive()

	if placeholderShown {
		c.stagePending(episode, dateKey)
		return
	}
	c.present(*episode, dateKey, "generated")
}

// ensureDisplayed guarantees some episode is presented after a failed
// reconciliation.
func (c *Controller) ensureDisplayed() {
	c.mu.Lock()
	missing := c.displayed == nil
	c.mu.Unlock()
	if missing {
		c.present(model.FallbackEpisode(), "", "fallback")
	}
}

// lookup treats every storage failure as a cache miss.
func (c *Controller) lookup(dateKey string) *model.StoredEpisode {
	stored, err := c.dao.Get(dateKey)
	if err != nil {
		c.logger.Warn("episode store read failed; treating as cache miss",
			zap.String("date_key", dateKey),
			zap.Error(err))
		return nil
	}
	return stored
}

func (c *Controller) latest() *model.StoredEpisode {
	stored, err := c.dao.GetLatest()
	if err != nil {
		c.logger.Warn("episode store read failed; treating as cache miss", zap.Error(err))
		return nil
	}
	return stored
}

func (c *Controller) refreshArchive() {
	all, err := c.dao.GetAll()
	if err != nil {
		c.logger.Warn("episode listing failed; keeping previous archive", zap.Error(err))
		return
	}
	entries := make([]ArchiveEntry, 0, len(all))
	for _, stored := range all {
		entries = append(entries, ArchiveEntry{DateKey: stored.DateKey, Episode: stored.Episode})
	}
	c.mu.Lock()
	c.archive = entries
	c.mu.Unlock()
}

// present makes an episode the displayed one and resets playback. Attaching
// the serving path here supersedes the previous episode's handle.
func (c *Controller) present(episode model.Episode, dateKey, source string) {
	if dateKey != "" {
		episode.AudioURL = audioPath(dateKey)
	}

	c.mu.Lock()
	c.displayed = &episode
	c.displayedKey = dateKey
	c.mu.Unlock()

	c.player.SetEpisode(&episode)
	metrics.EpisodesServedTotal.WithLabelValues(source).Inc()
	c.logger.Info("episode presented",
		zap.String("date_key", dateKey),
		zap.String("source", source),
		zap.String("title", episode.Title))
}

// stagePending records a freshly generated episode as available without
// interrupting whatever is playing. The listener applies it explicitly.
func (c *Controller) stagePending(episode *model.Episode, dateKey string) {
	staged := *episode
	staged.AudioURL = audioPath(dateKey)

	c.mu.Lock()
	c.pending = &staged
	c.pendingKey = dateKey
	c.mu.Unlock()

	c.logger.Info("new episode staged",
		zap.String("date_key", dateKey),
		zap.String("title", staged.Title))
	c.publish(Event{Type: EventEpisodeAvailable, DateKey: dateKey, Title: staged.Title})
}

// Displayed returns the currently presented episode (nil before Start) and
// whether a pending episode is waiting.
func (c *Controller) Displayed() (*model.Episode, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayed, c.pending != nil
}

// ApplyPending atomically swaps the pending episode in, resets playback to
// the beginning and clears the pending slot.
func (c *Controller) ApplyPending() (*model.Episode, error) {
	c.mu.Lock()
	if c.pending == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("no pending episode")
	}
	episode := c.pending
	dateKey := c.pendingKey
	c.displayed = episode
	c.displayedKey = dateKey
	c.pending = nil
	c.pendingKey = ""
	c.mu.Unlock()

	c.player.SetEpisode(episode)
	metrics.EpisodesServedTotal.WithLabelValues("generated").Inc()
	c.publish(Event{Type: EventEpisodeApplied, DateKey: dateKey, Title: episode.Title})
	return episode, nil
}

// SelectEpisode presents a stored episode from the archive, releasing the
// previous one's handle and resetting playback.
func (c *Controller) SelectEpisode(dateKey string) (*model.Episode, error) {
	stored, err := c.dao.Get(dateKey)
	if err != nil {
		return nil, fmt.Errorf("episode store read failed: %w", err)
	}
	if stored == nil {
		return nil, apperrors.Wrapf(apperrors.ErrEpisodeNotFound, "no episode stored for %s", dateKey)
	}
	c.present(stored.Episode, stored.DateKey, "cache")
	return c.displayedEpisode(), nil
}

func (c *Controller) displayedEpisode() *model.Episode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayed
}

// Archive returns the cached listing, newest first.
func (c *Controller) Archive() []ArchiveEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]ArchiveEntry, len(c.archive))
	copy(entries, c.archive)
	return entries
}

// AudioFor returns the stored WAV bytes for a date key.
func (c *Controller) AudioFor(dateKey string) ([]byte, error) {
	stored, err := c.dao.Get(dateKey)
	if err != nil {
		return nil, fmt.Errorf("episode store read failed: %w", err)
	}
	if stored == nil {
		return nil, apperrors.Wrapf(apperrors.ErrEpisodeNotFound, "no episode stored for %s", dateKey)
	}
	return stored.AudioData, nil
}

// Subscribe registers for refresh events. The returned cancel function must
// be called to release the subscription. Slow subscribers drop events rather
// than blocking the controller.
func (c *Controller) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 4)
	c.subMu.Lock()
	c.subscribers[ch] = struct{}{}
	c.subMu.Unlock()

	cancel := func() {
		c.subMu.Lock()
		if _, ok := c.subscribers[ch]; ok {
			delete(c.subscribers, ch)
			close(ch)
		}
		c.subMu.Unlock()
	}
	return ch, cancel
}

func (c *Controller) publish(event Event) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for ch := range c.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func audioPath(dateKey string) string {
	return "/api/v1/episodes/" + dateKey + "/audio"
}
