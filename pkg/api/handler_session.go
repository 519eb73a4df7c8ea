package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// SessionResponse is returned by POST /api/jobs/:id/session.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	WSPort    int    `json:"wsPort"`
}

// startSessionHandler handles POST /api/jobs/:id/session: spec.md §4.5
// names the interactive session manager as a top-level component but
// §6's documented HTTP surface only covers job submission/polling and
// media delivery, leaving the trigger for "spawns an interactive
// renderer" unspecified. A completed job's generated code is the only
// input the manager needs (renderer.RenderOptions.Interactive), so a job
// must have reached "completed" before a session can be started from it.
func (s *Server) startSessionHandler(c *gin.Context) {
	id := c.Param("id")

	result, ok := s.store.Get(id)
	if !ok || result.Status != model.JobStatusCompleted || result.Completed == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "job not completed"})
		return
	}

	sess, err := s.sessions.Start(c.Request.Context(), model.Job{ID: id}, result.Completed.Code)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{SessionID: sess.ID(), WSPort: sess.WSPort()})
}
