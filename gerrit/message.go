package gerrit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MagicPrefix is prepended by Gerrit to every JSON response body.
const MagicPrefix = ")]}'\n"

// Message is the body of a response whose status code matched the one the
// caller expected.
type Message struct {
	StatusCode int
	body       []byte
}

// NewMessage wraps a body received with the given status code.
func NewMessage(statusCode int, body []byte) Message {
	return Message{StatusCode: statusCode, body: body}
}

// JSON verifies that the body starts with [MagicPrefix] and returns the rest
// as text ready for decoding. Invalid UTF-8 sequences are replaced with
// U+FFFD. A body without the prefix yields a [*NotJSONResponseError] holding
// the body unmodified.
func (m Message) JSON() (string, error) {
	if !bytes.HasPrefix(m.body, []byte(MagicPrefix)) {
		return "", &NotJSONResponseError{Body: m.body}
	}
	return strings.ToValidUTF8(string(m.body[len(MagicPrefix):]), "\uFFFD"), nil
}

// String returns the body as text without looking for the prefix.
func (m Message) String() string {
	return strings.ToValidUTF8(string(m.body), "\uFFFD")
}

// Raw returns the body bytes without looking for the prefix.
func (m Message) Raw() []byte {
	return m.body
}

// decodeMessage unwraps m and decodes it into a T.
func decodeMessage[T any](m Message) (T, error) {
	var v T

	text, err := m.JSON()
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, fmt.Errorf("%w: decode %T: %w", ErrInvalidJSONResponse, v, err)
	}
	return v, nil
}
