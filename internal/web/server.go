// Package web serves the portfolio page over HTTP.
//
// Every GET / mounts a new view in the Store. The page's controls post to
// that view's endpoints, and the response is either the re-rendered #app
// fragment (HTMX) or a redirect back to the view (plain forms).
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dev-Moura/portfolio/internal/config"
	"github.com/Dev-Moura/portfolio/internal/content"
)

// Server is the HTTP host for the page.
type Server struct {
	cfg    *config.Config
	resume content.Resume
	logger *slog.Logger
	store  *Store
	engine *gin.Engine
}

// NewServer builds the router. The caller is expected to have set the gin
// mode already.
func NewServer(cfg *config.Config, resume content.Resume, logger *slog.Logger) (*Server, error) {
	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		resume: resume,
		logger: logger,
		store:  NewStore(cfg.ViewTTL),
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.index)
	r.GET("/healthz", s.health)

	views := r.Group("/views/:id")
	views.GET("", s.showView)
	views.POST("/theme/:theme", s.selectTheme)
	views.POST("/dark", s.toggleDark)

	s.engine = r
	return s, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Store returns the live view store.
func (s *Server) Store() *Store {
	return s.store
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.store.Run(sweepCtx, sweepInterval(s.cfg.ViewTTL), func(n int) {
		s.logger.Debug("expired views dropped", "count", n)
	})

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", srv.Addr, "env", s.cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// sweepInterval scans a few times per TTL, at most once a minute.
func sweepInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/4, time.Second), time.Minute)
}
