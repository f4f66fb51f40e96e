// Package web serves the journal and self goals over HTTP with gin.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/nhle/yournal/internal/journal"
	"github.com/nhle/yournal/internal/logging"
	"github.com/nhle/yournal/internal/model"
)

const shutdownTimeout = 5 * time.Second

// Server routes HTTP requests to the journal and goals services.
type Server struct {
	engine   *gin.Engine
	journal  *journal.Journal
	goals    *journal.Goals
	titleMax int
	log      *clog.Logger
}

// New builds the router. A nil logger means logging.L.
func New(j *journal.Journal, g *journal.Goals, titleMax int, logger *clog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.L
	}
	if titleMax <= 0 {
		titleMax = model.TitleMaxLength
	}

	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		engine:   gin.New(),
		journal:  j,
		goals:    g,
		titleMax: titleMax,
		log:      logger.With("component", "web"),
	}
	s.engine.SetHTMLTemplate(tmpl)
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.Use(gin.Recovery(), RequestID(), AccessLog(s.log))

	s.engine.GET("/", s.index)

	entries := s.engine.Group("/journal")
	{
		entries.GET("", s.listEntries)
		entries.POST("", s.addEntry)
		entries.POST("/:number/edit", s.editEntry)
		entries.POST("/:number/delete", s.deleteEntry)
	}

	goals := s.engine.Group("/self_goals")
	{
		goals.GET("", s.listGoals)
		goals.POST("", s.addGoal)
		goals.POST("/:id/complete", s.completeGoal)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.log.Info("stopped")
	return nil
}
