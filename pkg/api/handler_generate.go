package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gin-gonic/gin"

	"github.com/conceptreel/conceptreel/pkg/model"
	"github.com/conceptreel/conceptreel/pkg/pipeline"
)

// generateHandler handles POST /api/generate: validates the request,
// assigns a job id, and submits the job onto the pipeline's first topic.
// It never blocks on job completion — the pipeline runs on the event
// bus's worker pool and the caller polls GET /api/jobs/:id.
func (s *Server) generateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := validateGenerateRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if !anyProviderAvailable(s.registry) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: ErrNoProviderAvailable.Error()})
		return
	}

	job := model.Job{
		ID:           uuid.New().String(),
		Concept:      req.Concept,
		Quality:      model.Quality(req.Quality),
		Style:        model.Style(req.Style),
		UseSmartMode: req.UseNLU,
		CreatedAt:    time.Now(),
	}

	jc := pipeline.NewJobContext(job)
	if err := s.pipeline.Submit(c.Request.Context(), jc); err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, GenerateResponse{JobID: job.ID})
}
