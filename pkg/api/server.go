// Package api is the Job Gateway: the HTTP entry point that accepts job
// submissions, assigns a job id, kicks off the pipeline, and serves status
// polling and rendered media. Grounded on the teacher's earlier
// gin-based pkg/api/handlers.go (gin.Context, ShouldBindJSON, gin.H error
// bodies) generalized from alert-session submission to job submission —
// the later echo-based Server prototype in the teacher's tree was never
// declared in go.mod (see DESIGN.md) and is not carried forward.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conceptreel/conceptreel/pkg/jobstore"
	"github.com/conceptreel/conceptreel/pkg/pipeline"
	"github.com/conceptreel/conceptreel/pkg/providers"
	"github.com/conceptreel/conceptreel/pkg/session"
	"github.com/conceptreel/conceptreel/pkg/version"
)

// Server is the Job Gateway HTTP server.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server

	pipeline *pipeline.Pipeline
	store    *jobstore.Store
	registry *providers.Registry
	sessions *session.Manager
	mediaDir string
}

// NewServer wires a Server's routes over the given collaborators.
// sessions may be nil when the interactive session manager is disabled.
func NewServer(p *pipeline.Pipeline, store *jobstore.Store, registry *providers.Registry, sessions *session.Manager, mediaDir string) *Server {
	s := &Server{
		router:   gin.Default(),
		pipeline: p,
		store:    store,
		registry: registry,
		sessions: sessions,
		mediaDir: mediaDir,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler)
	s.router.POST("/api/generate", s.generateHandler)
	s.router.GET("/api/jobs/:id", s.getJobHandler)
	if s.sessions != nil {
		s.router.POST("/api/jobs/:id/session", s.startSessionHandler)
		s.router.POST("/api/sessions/:id/stop", s.stopSessionHandler)
	}
	s.router.GET("/media/*filepath", s.mediaHandler)
}

// Start runs the HTTP server on addr (blocking).
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{Addr: addr, Handler: s.router}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	activeSessions := 0
	if s.sessions != nil {
		activeSessions = s.sessions.ActiveSessions()
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		Version:        version.Full(),
		ActiveSessions: activeSessions,
		JobsInFlight:   s.store.Len(),
	})
}

func (s *Server) stopSessionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := s.sessions.Stop(id); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stopped"})
}

// anyProviderAvailable reports whether at least one registered provider
// is currently available, used to fail fast with 503 at submission time
// rather than letting a doomed job run the full pipeline to a
// video.failed result.
func anyProviderAvailable(registry *providers.Registry) bool {
	for _, p := range registry.GetAll() {
		if p.IsAvailable() {
			return true
		}
	}
	return false
}
