package cli

import (
	"errors"
	"fmt"

	"github.com/natanaeljr/gerlib/internal/store"
)

var (
	// ErrNoRemotes is returned by change commands when the registry is empty.
	ErrNoRemotes = errors.New("no remotes registered, add one with 'ger remote add'")

	// ErrAmbiguousRemote is returned when several remotes are registered and
	// none was selected with --remote.
	ErrAmbiguousRemote = errors.New("several remotes registered, select one with --remote")

	// ErrCheckFailed is returned by "remote check" when a server could not
	// be queried.
	ErrCheckFailed = errors.New("remote check failed")
)

// messageError is shown to the user as msg while still matching err.
type messageError struct {
	msg string
	err error
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() error { return e.err }

func newMessageError(err error, format string, args ...any) error {
	return &messageError{msg: fmt.Sprintf(format, args...), err: err}
}

func noSuchRemote(err error, name string) error {
	if errors.Is(err, store.ErrRemoteNotFound) {
		return newMessageError(err, "no such remote '%s'.", name)
	}
	return err
}
