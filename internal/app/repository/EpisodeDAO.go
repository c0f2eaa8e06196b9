package repository

import (
	"suomicast/internal/app/model"
)

// EpisodeDAO persists generated episodes keyed by calendar date. Re-saving a
// key overwrites the previous record; persisted episodes never carry a live
// audio handle. Read methods report absence as (nil, nil); callers are
// expected to treat storage failures the same as a cache miss.
type EpisodeDAO interface {
	Close() error

	// Get returns the stored episode for the date key, or nil when absent.
	Get(dateKey string) (*model.StoredEpisode, error)

	// GetAll returns every stored episode ordered by date key descending.
	GetAll() ([]model.StoredEpisode, error)

	// GetLatest returns the most recently dated stored episode, or nil when
	// the store is empty.
	GetLatest() (*model.StoredEpisode, error)

	// Save persists an episode with its WAV audio under the date key,
	// overwriting any existing record. The transient audio handle is
	// stripped before writing.
	Save(dateKey string, episode model.Episode, audioData []byte) error
}
