package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// getJobHandler handles GET /api/jobs/:id: returns {status:"generating"}
// while the job is still in flight, or the stored terminal JobResult
// (completed or failed) once the pipeline has finished. The status never
// regresses once it reaches a terminal state, since the job store only
// ever holds the most recent Put and the pipeline publishes exactly one
// terminal event per job.
func (s *Server) getJobHandler(c *gin.Context) {
	id := c.Param("id")

	result, ok := s.store.Get(id)
	if !ok {
		c.JSON(http.StatusOK, model.JobResult{Status: model.JobStatusGenerating})
		return
	}
	c.JSON(http.StatusOK, result)
}
