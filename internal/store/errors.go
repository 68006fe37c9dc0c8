package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRemoteExists is returned when a remote with the same name is
	// already registered.
	ErrRemoteExists = errors.New("remote already exists")

	// ErrRemoteNotFound is returned when no remote has the requested name.
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrUnknownDriver is returned for a registry driver other than json or
	// sqlite.
	ErrUnknownDriver = errors.New("unknown registry driver")
)

// Low-level database operation errors, wrapped by the SQLite repository
// when a SQL operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan remote rows")
)
