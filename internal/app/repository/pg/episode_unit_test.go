package pg

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "suomicast/internal/app/errors"
	"suomicast/internal/app/model"
	"suomicast/internal/app/repository"
)

func TestPostgresDB_Interface(t *testing.T) {
	var _ repository.EpisodeDAO = (*PostgresDB)(nil)
}

func newMockDB(t *testing.T) (*PostgresDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	pdb := NewPostgresDBWithConn(db)
	t.Cleanup(func() { pdb.Close() })
	return pdb, mock
}

func episodeColumns() []string {
	return []string{"date_key", "episode_id", "title", "description", "duration", "transcript", "audio_data"}
}

func TestGetReturnsStoredEpisode(t *testing.T) {
	pdb, mock := newMockDB(t)

	transcript := `[{"id":"seg-0","startTime":0,"endTime":4.5,"text":"Hyvää huomenta."}]`
	mock.ExpectQuery(`SELECT date_key, episode_id, title, description, duration, transcript, audio_data\s+FROM episodes WHERE date_key = \$1`).
		WithArgs("2026-08-29").
		WillReturnRows(sqlmock.NewRows(episodeColumns()).
			AddRow("2026-08-29", "ep-2026-08-29", "Uutiset", "Daily stories.", "0:04", transcript, []byte{9, 9}))

	stored, err := pdb.Get("2026-08-29")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "ep-2026-08-29", stored.Episode.ID)
	require.Len(t, stored.Episode.Transcript, 1)
	assert.Equal(t, "Hyvää huomenta.", stored.Episode.Transcript[0].Text)
	assert.Equal(t, []byte{9, 9}, stored.AudioData)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAbsentReturnsNil(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM episodes WHERE date_key = \$1`).
		WithArgs("2000-01-01").
		WillReturnRows(sqlmock.NewRows(episodeColumns()))

	stored, err := pdb.Get("2000-01-01")
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpserts(t *testing.T) {
	pdb, mock := newMockDB(t)

	episode := model.Episode{
		ID:       "ep-2026-08-29",
		Title:    "Uutiset",
		AudioURL: "will-be-stripped",
		Duration: "1:00",
		Transcript: []model.TranscriptSegment{
			{ID: "seg-0", StartTime: 0, EndTime: 60, Text: "Tervetuloa."},
		},
	}

	mock.ExpectExec(`INSERT INTO episodes`).
		WithArgs("2026-08-29", "ep-2026-08-29", "Uutiset", "", "1:00",
			`[{"id":"seg-0","startTime":0,"endTime":60,"text":"Tervetuloa."}]`,
			[]byte{1, 2, 3}, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, pdb.Save("2026-08-29", episode, []byte{1, 2, 3}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllOrdersDescending(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectQuery(`FROM episodes\s+ORDER BY date_key DESC`).
		WillReturnRows(sqlmock.NewRows(episodeColumns()).
			AddRow("2026-08-29", "ep-b", "B", "", "1:00", `[]`, []byte{2}).
			AddRow("2026-08-28", "ep-a", "A", "", "1:00", `[]`, []byte{1}))

	all, err := pdb.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2026-08-29", all[0].DateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestEmptyStore(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectQuery(`ORDER BY date_key DESC LIMIT 1`).
		WillReturnRows(sqlmock.NewRows(episodeColumns()))

	latest, err := pdb.GetLatest()
	require.NoError(t, err)
	assert.Nil(t, latest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestErrorsCarryDomainSentinels(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectQuery(`FROM episodes\s+ORDER BY date_key DESC`).
		WillReturnError(errors.New("connection reset"))
	_, err := pdb.GetAll()
	assert.ErrorIs(t, err, apperrors.ErrQueryFailed)

	mock.ExpectExec(`INSERT INTO episodes`).
		WillReturnError(errors.New("disk full"))
	err = pdb.Save("2026-08-29", model.Episode{ID: "ep"}, []byte{1})
	assert.ErrorIs(t, err, apperrors.ErrInsertFailed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
