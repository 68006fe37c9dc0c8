package store

import (
	"context"

	"github.com/natanaeljr/gerlib/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteRepository stores named remotes. Names are unique.
type RemoteRepository interface {
	// ListRemotes returns all remotes ordered by name.
	ListRemotes(ctx context.Context) ([]models.Remote, error)
	// GetRemote returns the remote called name or ErrRemoteNotFound.
	GetRemote(ctx context.Context, name string) (models.Remote, error)
	// AddRemote registers remote or fails with ErrRemoteExists.
	AddRemote(ctx context.Context, remote models.Remote) error
	// RemoveRemote deletes the remote called name or fails with
	// ErrRemoteNotFound.
	RemoveRemote(ctx context.Context, name string) error
	// Close releases the underlying storage.
	Close() error
}
