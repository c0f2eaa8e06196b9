package pg

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	apperrors "suomicast/internal/app/errors"
	"suomicast/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS episodes (
	date_key    TEXT PRIMARY KEY,
	episode_id  TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	duration    TEXT NOT NULL,
	transcript  JSONB NOT NULL,
	audio_data  BYTEA NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);`

// PostgresDB is the shared-server episode store, for deployments where more
// than one suomicast instance serves the same archive.
type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB connects with the given DSN and ensures the schema exists.
func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrDatabaseConnection, "failed to open postgres connection: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperrors.Wrapf(apperrors.ErrDatabaseConnection, "failed to ping postgres: %v", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create episodes table: %w", err)
	}
	return &PostgresDB{db: db}, nil
}

// NewPostgresDBWithConn wraps an existing connection. Used by unit tests.
func NewPostgresDBWithConn(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) Get(dateKey string) (*model.StoredEpisode, error) {
	query := `SELECT date_key, episode_id, title, description, duration, transcript, audio_data
		FROM episodes WHERE date_key = $1`
	stored, err := scanEpisode(pdb.db.QueryRow(query, dateKey))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return stored, err
}

func (pdb *PostgresDB) GetAll() ([]model.StoredEpisode, error) {
	query := `
		SELECT date_key, episode_id, title, description, duration, transcript, audio_data
		FROM episodes
		ORDER BY date_key DESC`
	rows, err := pdb.db.Query(query)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrQueryFailed, "episode listing: %v", err)
	}
	defer rows.Close()

	episodes := make([]model.StoredEpisode, 0)
	for rows.Next() {
		stored, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, *stored)
	}
	return episodes, rows.Err()
}

func (pdb *PostgresDB) GetLatest() (*model.StoredEpisode, error) {
	query := `SELECT date_key, episode_id, title, description, duration, transcript, audio_data
		FROM episodes ORDER BY date_key DESC LIMIT 1`
	stored, err := scanEpisode(pdb.db.QueryRow(query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return stored, err
}

func (pdb *PostgresDB) Save(dateKey string, episode model.Episode, audioData []byte) error {
	persisted := episode.WithoutAudioURL()
	transcriptJSON, err := json.Marshal(persisted.Transcript)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	upsertSQL := `INSERT INTO episodes
		(date_key, episode_id, title, description, duration, transcript, audio_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (date_key) DO UPDATE SET
			episode_id  = EXCLUDED.episode_id,
			title       = EXCLUDED.title,
			description = EXCLUDED.description,
			duration    = EXCLUDED.duration,
			transcript  = EXCLUDED.transcript,
			audio_data  = EXCLUDED.audio_data,
			created_at  = EXCLUDED.created_at`
	_, err = pdb.db.Exec(upsertSQL, dateKey, persisted.ID, persisted.Title, persisted.Description,
		persisted.Duration, string(transcriptJSON), audioData, time.Now())
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrInsertFailed, "failed to upsert episode %s: %v", dateKey, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row rowScanner) (*model.StoredEpisode, error) {
	var stored model.StoredEpisode
	var transcriptJSON []byte
	err := row.Scan(&stored.DateKey, &stored.Episode.ID, &stored.Episode.Title,
		&stored.Episode.Description, &stored.Episode.Duration, &transcriptJSON, &stored.AudioData)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrapf(apperrors.ErrScanFailed, "episode row: %v", err)
	}
	if err := json.Unmarshal(transcriptJSON, &stored.Episode.Transcript); err != nil {
		return nil, fmt.Errorf("failed to decode transcript for %s: %w", stored.DateKey, err)
	}
	return &stored, nil
}
