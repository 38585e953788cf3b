package api

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eargollo/plotify/internal/api/handlers"
	"github.com/eargollo/plotify/internal/db"
	"github.com/eargollo/plotify/internal/health"
	"github.com/eargollo/plotify/internal/scheduler"
)

// Server holds the HTTP server and all handler dependencies.
type Server struct {
	addr string
	srv  *http.Server
}

// New wires all routes and returns a Server ready to Run.
// Chart endpoints open the store at dbPath read-only once per request.
func New(
	addr string,
	dbPath string,
	probe *health.Probe,
	sched *scheduler.Scheduler,
	version string,
	staticFS fs.FS,
) *Server {
	return &Server{
		addr: addr,
		srv:  &http.Server{Addr: addr, Handler: Router(dbPath, probe, sched, version, staticFS)},
	}
}

// Router builds the chi router; exposed so tests can drive it with httptest.
func Router(dbPath string, probe *health.Probe, sched *scheduler.Scheduler, version string, staticFS fs.FS) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	statusH := &handlers.StatusHandler{Probe: probe, Sched: sched, Version: version}

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", statusH.ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(db.Scope(dbPath))
			r.Get("/attributes", handlers.Attributes)
			r.Post("/chart", handlers.Chart)
		})
	})

	if staticFS != nil {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFileFS(w, r, staticFS, "index.html")
		})
		r.Handle("/dist/*", http.FileServer(http.FS(staticFS)))
	}

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")
		return s.srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}
