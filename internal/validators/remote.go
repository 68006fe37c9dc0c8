package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/natanaeljr/gerlib/models"
)

// Field names accepted by RemoteValidator.
const (
	FieldName = "name"
	FieldURL  = "url"
	FieldPort = "port"
)

const maxRemoteNameLen = 64

type RemoteValidator struct {
	v *validator.Validate
}

func NewRemoteValidator() Validator {
	return &RemoteValidator{v: validator.New()}
}

func (rv *RemoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Remote:
		return rv.validateRemote(ctx, value, fields...)
	case *models.Remote:
		if value == nil {
			return fmt.Errorf("%w: nil remote", ErrUnsupportedType)
		}
		return rv.validateRemote(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (rv *RemoteValidator) validateRemote(_ context.Context, r models.Remote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldURL, FieldPort}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldName:
			err = validateRemoteName(r.Name)
		case FieldURL:
			err = rv.validateURL(r.URL)
		case FieldPort:
			err = rv.validatePort(r.Port)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateRemoteName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidRemoteName)
	case len(name) > maxRemoteNameLen:
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidRemoteName, name, maxRemoteNameLen)
	case strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidRemoteName, name)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w: %q starts with '-'", ErrInvalidRemoteName, name)
	}
	return nil
}

func (rv *RemoteValidator) validateURL(raw string) error {
	if err := rv.v.Var(raw, "required,http_url"); err != nil {
		return fmt.Errorf("%w: %q must be an http or https url", ErrInvalidRemoteURL, raw)
	}
	return nil
}

func (rv *RemoteValidator) validatePort(port int) error {
	if err := rv.v.Var(port, "omitempty,min=1,max=65535"); err != nil {
		return fmt.Errorf("%w: %d is not in 1..65535", ErrInvalidRemotePort, port)
	}
	return nil
}
