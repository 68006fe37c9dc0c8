package store

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/natanaeljr/gerlib/internal/logger"
	"github.com/natanaeljr/gerlib/models"
)

// fileRemoteRepository keeps remotes in a single JSON file. The file is
// rewritten after every change.
type fileRemoteRepository struct {
	path   string
	logger *logger.Logger

	mu      sync.RWMutex
	remotes map[string]models.Remote
}

type persistedRemotes struct {
	Remotes []models.Remote `json:"remotes"`
}

// NewFileRemoteRepository opens the registry file at path. A missing file
// is an empty registry; it is created by the first change.
func NewFileRemoteRepository(path string, log *logger.Logger) (RemoteRepository, error) {
	r := &fileRemoteRepository{
		path:    path,
		logger:  log,
		remotes: make(map[string]models.Remote),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *fileRemoteRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read remote registry: %w", err)
	}

	var st persistedRemotes
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode remote registry %s: %w", r.path, err)
	}

	for _, remote := range st.Remotes {
		r.remotes[remote.Name] = remote
	}

	r.logger.Debug().
		Str("func", "fileRemoteRepository.load").
		Str("path", r.path).
		Int("remotes", len(r.remotes)).
		Msg("remote registry loaded")

	return nil
}

// persist must be called with mu held for writing.
func (r *fileRemoteRepository) persist() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("create remote registry dir: %w", err)
	}

	payload, err := json.MarshalIndent(persistedRemotes{Remotes: r.sorted()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode remote registry: %w", err)
	}

	tmp := r.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write remote registry: %w", err)
	}
	if err = os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace remote registry: %w", err)
	}

	return nil
}

func (r *fileRemoteRepository) sorted() []models.Remote {
	out := make([]models.Remote, 0, len(r.remotes))
	for _, remote := range r.remotes {
		out = append(out, remote)
	}
	slices.SortFunc(out, func(a, b models.Remote) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

func (r *fileRemoteRepository) ListRemotes(_ context.Context) ([]models.Remote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(), nil
}

func (r *fileRemoteRepository) GetRemote(_ context.Context, name string) (models.Remote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	remote, ok := r.remotes[name]
	if !ok {
		return models.Remote{}, fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}
	return remote, nil
}

func (r *fileRemoteRepository) AddRemote(ctx context.Context, remote models.Remote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.remotes[remote.Name]; ok {
		return fmt.Errorf("%w: %s", ErrRemoteExists, remote.Name)
	}

	r.remotes[remote.Name] = remote
	if err := r.persist(); err != nil {
		delete(r.remotes, remote.Name)
		logger.FromContext(ctx).Err(err).
			Str("func", "fileRemoteRepository.AddRemote").
			Str("remote", remote.Name).
			Msg("failed to persist remote registry")
		return err
	}

	return nil
}

func (r *fileRemoteRepository) RemoveRemote(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	remote, ok := r.remotes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}

	delete(r.remotes, name)
	if err := r.persist(); err != nil {
		r.remotes[name] = remote
		logger.FromContext(ctx).Err(err).
			Str("func", "fileRemoteRepository.RemoveRemote").
			Str("remote", name).
			Msg("failed to persist remote registry")
		return err
	}

	return nil
}

func (r *fileRemoteRepository) Close() error { return nil }
