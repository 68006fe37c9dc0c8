package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natanaeljr/gerlib/internal/logger"
	"github.com/natanaeljr/gerlib/models"
)

func newMockRepository(t *testing.T) (*remoteRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := &DB{DB: sqlDB, logger: logger.Nop()}
	return &remoteRepository{db: db, logger: logger.Nop()}, mock
}

var remoteRowColumns = []string{"name", "url", "port", "username", "password"}

// ── ListRemotes ─────────────────────────────────────────────────────────────

// TestListRemotes_Success verifies that rows are mapped to remotes and NULL
// credentials become empty strings.
func TestListRemotes_Success(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, url, port, username, password FROM remotes ORDER BY name")).
		WillReturnRows(sqlmock.NewRows(remoteRowColumns).
			AddRow("alpha", "https://a.example.org", 0, nil, nil).
			AddRow("beta", "https://b.example.org", 29418, "jdoe", "secret"))

	got, err := repo.ListRemotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Remote{
		{Name: "alpha", URL: "https://a.example.org"},
		{Name: "beta", URL: "https://b.example.org", Port: 29418, Username: "jdoe", Password: "secret"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRemotes_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM remotes")).
		WillReturnRows(sqlmock.NewRows(remoteRowColumns))

	got, err := repo.ListRemotes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListRemotes_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM remotes")).WillReturnError(errors.New("disk I/O error"))

	_, err := repo.ListRemotes(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListRemotes_ScanError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM remotes")).
		WillReturnRows(sqlmock.NewRows(remoteRowColumns).
			AddRow("alpha", "https://a.example.org", "not-a-port", nil, nil))

	_, err := repo.ListRemotes(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── GetRemote ───────────────────────────────────────────────────────────────

func TestGetRemote_Success(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM remotes WHERE name = ?")).
		WithArgs("origin").
		WillReturnRows(sqlmock.NewRows(remoteRowColumns).
			AddRow("origin", "https://review.example.org", 8443, "jdoe", nil))

	got, err := repo.GetRemote(context.Background(), "origin")
	require.NoError(t, err)
	assert.Equal(t, models.Remote{Name: "origin", URL: "https://review.example.org", Port: 8443, Username: "jdoe"}, got)
}

func TestGetRemote_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM remotes WHERE name = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(remoteRowColumns))

	_, err := repo.GetRemote(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRemoteNotFound)
}

// ── AddRemote ───────────────────────────────────────────────────────────────

func TestAddRemote_Success(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO remotes (name,url,port,username,password) VALUES (?,?,?,?,?)")).
		WithArgs("origin", "https://review.example.org", 0, "", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AddRemote(context.Background(), models.Remote{Name: "origin", URL: "https://review.example.org"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRemote_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO remotes")).WillReturnError(errors.New("database is locked"))

	err := repo.AddRemote(context.Background(), models.Remote{Name: "origin", URL: "https://review.example.org"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrRemoteExists)
}

// ── RemoveRemote ────────────────────────────────────────────────────────────

func TestRemoveRemote_Success(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM remotes WHERE name = ?")).
		WithArgs("origin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RemoveRemote(context.Background(), "origin"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveRemote_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM remotes WHERE name = ?")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveRemote(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRemoteNotFound)
}

func TestRemoveRemote_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM remotes")).WillReturnError(errors.New("boom"))

	err := repo.RemoveRemote(context.Background(), "origin")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
