// Package health periodically checks that the chart store can be opened
// read-only and queried.
package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eargollo/plotify/internal/db"
)

// Result is the outcome of one probe.
type Result struct {
	Path       string    `json:"path"`
	OK         bool      `json:"ok"`
	CheckedAt  time.Time `json:"checked_at"`
	Error      string    `json:"error,omitempty"`
	Teachers   int64     `json:"teachers"`
	Attributes int64     `json:"attributes"`
}

// Probe checks the store at a fixed path and remembers the last result.
type Probe struct {
	path string
	now  func() time.Time

	mu   sync.RWMutex
	last *Result
}

// NewProbe returns a Probe for the store at path. No check runs until Run.
func NewProbe(path string) *Probe {
	return &Probe{path: path, now: time.Now}
}

// Run opens a fresh read-only session, counts distinct teachers and
// attributes, records the result and returns it.
func (p *Probe) Run(ctx context.Context) Result {
	res := Result{Path: p.path, CheckedAt: p.now().UTC()}

	err := p.check(ctx, &res)
	if err != nil {
		res.Error = err.Error()
		slog.Warn("health: store check failed", "path", p.path, "error", err)
	} else {
		res.OK = true
		slog.Debug("health: store ok", "path", p.path,
			"teachers", res.Teachers, "attributes", res.Attributes)
	}

	p.mu.Lock()
	p.last = &res
	p.mu.Unlock()
	return res
}

func (p *Probe) check(ctx context.Context, res *Result) error {
	s := db.NewSession(p.path)
	defer s.Close()

	store, err := s.DB()
	if err != nil {
		return err
	}
	if err := store.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT teacher_name) FROM class`).Scan(&res.Teachers); err != nil {
		return err
	}
	return store.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT attribute) FROM student_attribute`).Scan(&res.Attributes)
}

// Last returns a copy of the most recent result, or nil before the first Run.
func (p *Probe) Last() *Result {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.last == nil {
		return nil
	}
	r := *p.last
	return &r
}
