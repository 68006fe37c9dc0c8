package gerrit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnexpectedHTTPResponse is matched by every [UnexpectedResponseError].
	ErrUnexpectedHTTPResponse = errors.New("unexpected http response")
	// ErrNotJSONResponse is matched by every [NotJSONResponseError].
	ErrNotJSONResponse = errors.New("response is not json")
	// ErrInvalidJSONResponse reports a body that carried the JSON prefix but
	// could not be decoded into the expected type.
	ErrInvalidJSONResponse = errors.New("invalid json response")
	// ErrHTTPHandler is matched by every [TransportError].
	ErrHTTPHandler = errors.New("http handler failure")
	// ErrWrongQuery reports query parameters that could not be encoded.
	ErrWrongQuery = errors.New("wrong query")
	// ErrConfig reports an unusable client configuration, e.g. a malformed host.
	ErrConfig = errors.New("invalid client configuration")
)

// Status class sentinels. An [UnexpectedResponseError] matches the one for
// its status code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusPreconditionFailed:
		return ErrPreconditionFailed
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}

// UnexpectedResponseError is returned when the server answers with a status
// code the endpoint does not document as success. Body is the raw response
// body; Gerrit puts a plain text explanation there.
type UnexpectedResponseError struct {
	StatusCode int
	Expected   []int
	Body       []byte
}

func (e *UnexpectedResponseError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("unexpected http response %d: %s", e.StatusCode, body)
}

// Is matches [ErrUnexpectedHTTPResponse] and the status class sentinel.
func (e *UnexpectedResponseError) Is(target error) bool {
	if target == ErrUnexpectedHTTPResponse {
		return true
	}
	s := statusSentinel(e.StatusCode)
	return s != nil && target == s
}

// NotJSONResponseError is returned by [Message.JSON] when the body lacks the
// ")]}'\n" prefix. Body is kept unmodified.
type NotJSONResponseError struct {
	Body []byte
}

func (e *NotJSONResponseError) Error() string {
	const previewLen = 64
	body := string(e.Body)
	if len(body) > previewLen {
		body = body[:previewLen] + "..."
	}
	return fmt.Sprintf("%s: %q", ErrNotJSONResponse, body)
}

func (e *NotJSONResponseError) Is(target error) bool { return target == ErrNotJSONResponse }

// TransportError wraps a failure to complete an HTTP exchange: connection
// refused, DNS, TLS handshake, timeout or context cancellation.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrHTTPHandler }

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var respErr *UnexpectedResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode, true
	}
	return 0, false
}

// ResponseBody returns the raw body carried by an [UnexpectedResponseError]
// or a [NotJSONResponseError].
func ResponseBody(err error) ([]byte, bool) {
	var respErr *UnexpectedResponseError
	if errors.As(err, &respErr) {
		return respErr.Body, true
	}
	var notJSON *NotJSONResponseError
	if errors.As(err, &notJSON) {
		return notJSON.Body, true
	}
	return nil, false
}
