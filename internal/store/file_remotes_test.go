package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natanaeljr/gerlib/internal/logger"
	"github.com/natanaeljr/gerlib/models"
)

func TestFileRemoteRepository_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ger", "remotes.json")

	repo, err := NewFileRemoteRepository(path, logger.Nop())
	require.NoError(t, err)

	got, err := repo.ListRemotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "listing must not create the registry file")
}

// TestFileRemoteRepository_RoundTrip verifies that remotes survive reopening
// the registry and are listed in name order.
func TestFileRemoteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ger", "remotes.json")

	repo, err := NewFileRemoteRepository(path, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, repo.AddRemote(ctx, models.Remote{Name: "zeta", URL: "https://z.example.org"}))
	require.NoError(t, repo.AddRemote(ctx, models.Remote{
		Name: "alpha", URL: "https://a.example.org", Port: 8443, Username: "jdoe", Password: "secret",
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := NewFileRemoteRepository(path, logger.Nop())
	require.NoError(t, err)

	got, err := reopened.ListRemotes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, 8443, got[0].Port)
	assert.Equal(t, "secret", got[0].Password)
	assert.Equal(t, "zeta", got[1].Name)
}

func TestFileRemoteRepository_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRemoteRepository(filepath.Join(t.TempDir(), "remotes.json"), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, repo.AddRemote(ctx, models.Remote{Name: "origin", URL: "https://a.example.org"}))
	err = repo.AddRemote(ctx, models.Remote{Name: "origin", URL: "https://b.example.org"})
	assert.ErrorIs(t, err, ErrRemoteExists)

	got, err := repo.GetRemote(ctx, "origin")
	require.NoError(t, err)
	assert.Equal(t, "https://a.example.org", got.URL)
}

func TestFileRemoteRepository_Remove(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "remotes.json")
	repo, err := NewFileRemoteRepository(path, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, repo.AddRemote(ctx, models.Remote{Name: "origin", URL: "https://a.example.org"}))
	require.NoError(t, repo.RemoveRemote(ctx, "origin"))

	_, err = repo.GetRemote(ctx, "origin")
	assert.ErrorIs(t, err, ErrRemoteNotFound)
	assert.ErrorIs(t, repo.RemoveRemote(ctx, "origin"), ErrRemoteNotFound)

	reopened, err := NewFileRemoteRepository(path, logger.Nop())
	require.NoError(t, err)
	got, err := reopened.ListRemotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileRemoteRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remotes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileRemoteRepository(path, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode remote registry")
}
