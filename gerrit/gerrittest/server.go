// Package gerrittest provides a fake Gerrit server for tests.
//
// Handlers are registered per method and route pattern (chi syntax) and
// answer with bodies framed the way Gerrit frames them:
//
//	srv := gerrittest.NewServer(t)
//	srv.JSON(http.MethodGet, "/a/changes/{id}/topic", http.StatusOK, "mytopic")
//	client, _ := gerrit.NewClient(srv.URL)
//
// Every request is recorded and can be inspected with [Server.Requests].
package gerrittest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/natanaeljr/gerlib/models"
)

// MagicPrefix precedes every JSON body written by the fake server.
const MagicPrefix = ")]}'\n"

// Recorded is a request received by the fake server.
type Recorded struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server is a fake Gerrit server backed by [httptest.Server].
type Server struct {
	*httptest.Server

	router chi.Router

	mu       sync.Mutex
	requests []Recorded
}

// Option configures a [Server].
type Option func(r chi.Router)

// WithBasicAuth rejects requests that do not carry the given credentials.
func WithBasicAuth(username, password string) Option {
	return func(r chi.Router) {
		r.Use(middleware.BasicAuth("Gerrit Code Review", map[string]string{username: password}))
	}
}

// NewServer starts a fake server and stops it when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{router: chi.NewRouter()}
	s.router.Use(s.record)
	for _, opt := range opts {
		opt(s.router)
	}

	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Close)

	return s
}

// Handle registers an arbitrary handler.
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) {
	s.router.MethodFunc(method, pattern, h)
}

// JSON answers with status and v encoded as JSON behind the magic prefix.
func (s *Server) JSON(method, pattern string, status int, v any) {
	s.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, v)
	})
}

// Raw answers with status and body written verbatim.
func (s *Server) Raw(method, pattern string, status int, body string) {
	s.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Status answers with status and an empty body.
func (s *Server) Status(method, pattern string, status int) {
	s.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request. It reports false when none
// was received.
func (s *Server) LastRequest() (Recorded, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return Recorded{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		path := r.URL.Path
		if r.URL.RawPath != "" {
			path = r.URL.RawPath
		}

		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Method:   r.Method,
			Path:     path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// WriteJSON writes v the way Gerrit does: magic prefix, then JSON.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, MagicPrefix)
	_, _ = w.Write(b)
}

// Change returns a minimal open change with the given number and subject.
func Change(number int, subject string) models.ChangeInfo {
	created := models.NewTimestamp(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))
	return models.ChangeInfo{
		ID:       "demo~master~I" + subject,
		Project:  "demo",
		Branch:   "master",
		ChangeID: "I" + subject,
		Subject:  subject,
		Status:   models.ChangeStatusNew,
		Created:  created,
		Updated:  created,
		Number:   number,
		Owner:    models.AccountInfo{AccountID: 1000096, Name: "John Doe"},
	}
}
