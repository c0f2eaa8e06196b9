package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

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
	transcript  TEXT NOT NULL,
	audio_data  BLOB NOT NULL,
	created_at  TIMESTAMP NOT NULL
);`

// SQLiteDB is the default, file-local episode store.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if needed) the episode database at dbFilePath.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrDatabaseConnection, "failed to open database: %v", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create episodes table: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Get(dateKey string) (*model.StoredEpisode, error) {
	query := `SELECT date_key, episode_id, title, description, duration, transcript, audio_data
		FROM episodes WHERE date_key = ?`
	stored, err := scanEpisode(sdb.db.QueryRow(query, dateKey))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return stored, err
}

func (sdb *SQLiteDB) GetAll() ([]model.StoredEpisode, error) {
	sqlStr := `
		SELECT date_key, episode_id, title, description, duration, transcript, audio_data
		FROM episodes
		ORDER BY date_key DESC;`
	rows, err := sdb.db.Query(sqlStr)
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

func (sdb *SQLiteDB) GetLatest() (*model.StoredEpisode, error) {
	query := `SELECT date_key, episode_id, title, description, duration, transcript, audio_data
		FROM episodes ORDER BY date_key DESC LIMIT 1`
	stored, err := scanEpisode(sdb.db.QueryRow(query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return stored, err
}

func (sdb *SQLiteDB) Save(dateKey string, episode model.Episode, audioData []byte) error {
	persisted := episode.WithoutAudioURL()
	transcriptJSON, err := json.Marshal(persisted.Transcript)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	insertSQL := `INSERT OR REPLACE INTO episodes
		(date_key, episode_id, title, description, duration, transcript, audio_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
	_, err = sdb.db.Exec(insertSQL, dateKey, persisted.ID, persisted.Title, persisted.Description,
		persisted.Duration, string(transcriptJSON), audioData, time.Now())
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrInsertFailed, "failed to insert episode %s: %v", dateKey, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row rowScanner) (*model.StoredEpisode, error) {
	var stored model.StoredEpisode
	var transcriptJSON string
	err := row.Scan(&stored.DateKey, &stored.Episode.ID, &stored.Episode.Title,
		&stored.Episode.Description, &stored.Episode.Duration, &transcriptJSON, &stored.AudioData)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrapf(apperrors.ErrScanFailed, "episode row: %v", err)
	}
	if err := json.Unmarshal([]byte(transcriptJSON), &stored.Episode.Transcript); err != nil {
		// A corrupt transcript row is still presentable as metadata.
		log.Printf("failed to decode transcript for %s: %v\n", stored.DateKey, err)
		stored.Episode.Transcript = []model.TranscriptSegment{}
	}
	return &stored, nil
}
