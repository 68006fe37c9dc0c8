package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRemoteName = errors.New("invalid remote name")
	ErrInvalidRemoteURL  = errors.New("invalid remote url")
	ErrInvalidRemotePort = errors.New("invalid remote port")
)
