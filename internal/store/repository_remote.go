package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/natanaeljr/gerlib/internal/logger"
	"github.com/natanaeljr/gerlib/models"
)

type remoteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRemoteRepository returns a repository backed by db. The schema must
// already be migrated.
func NewRemoteRepository(db *DB, log *logger.Logger) RemoteRepository {
	return &remoteRepository{db: db, logger: log}
}

func (r *remoteRepository) ListRemotes(ctx context.Context) ([]models.Remote, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectRemotesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "remoteRepository.ListRemotes").Msg("failed to query remotes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	remotes := make([]models.Remote, 0)
	for rows.Next() {
		remote, err := scanRemote(rows)
		if err != nil {
			log.Err(err).Str("func", "remoteRepository.ListRemotes").Msg("failed to scan remote row")
			return nil, err
		}
		remotes = append(remotes, remote)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return remotes, nil
}

func (r *remoteRepository) GetRemote(ctx context.Context, name string) (models.Remote, error) {
	query, args, err := selectRemoteQuery(name).ToSql()
	if err != nil {
		return models.Remote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	remote, err := scanRemote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Remote{}, fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRepository.GetRemote").
			Str("remote", name).
			Msg("failed to get remote")
		return models.Remote{}, err
	}

	return remote, nil
}

func (r *remoteRepository) AddRemote(ctx context.Context, remote models.Remote) error {
	query, args, err := insertRemoteQuery(remote.Name, remote.URL, remote.Port, remote.Username, remote.Password).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrRemoteExists, remote.Name)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRepository.AddRemote").
			Str("remote", remote.Name).
			Msg("failed to insert remote")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *remoteRepository) RemoveRemote(ctx context.Context, name string) error {
	query, args, err := deleteRemoteQuery(name).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRepository.RemoveRemote").
			Str("remote", name).
			Msg("failed to delete remote")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}

	return nil
}

func (r *remoteRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRemote(row rowScanner) (models.Remote, error) {
	var (
		remote             models.Remote
		username, password sql.NullString
	)
	if err := row.Scan(&remote.Name, &remote.URL, &remote.Port, &username, &password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Remote{}, err
		}
		return models.Remote{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	remote.Username = username.String
	remote.Password = password.String
	return remote, nil
}
