package db

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"sync"
)

// ErrNoSession is returned by FromContext when the request did not pass
// through Scope.
var ErrNoSession = errors.New("no store session in request context")

// Session is a read-only store handle scoped to a single request. The
// underlying connection is opened on the first call to DB and released by
// Close.
type Session struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// NewSession returns an unopened session for the store at path.
func NewSession(path string) *Session {
	return &Session{path: path}
}

// DB returns the session's read-only handle, opening it on first use.
func (s *Session) DB() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.New("store session already closed")
	}
	if s.db != nil {
		return s.db, nil
	}
	db, err := OpenReadOnly(s.path)
	if err != nil {
		return nil, err
	}
	s.db = db
	return db, nil
}

// Close releases the handle if one was opened. It is safe to call more than
// once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session attached by Scope, or ErrNoSession.
func FromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// Scope is middleware that attaches a fresh Session for the store at path to
// every request and closes it once the handler returns, panics included.
func Scope(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := NewSession(path)
			defer func() {
				if err := s.Close(); err != nil {
					slog.Warn("store session: close", "error", err)
				}
			}()
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}
