package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conceptreel/conceptreel/pkg/renderer"
)

// RenderDispatch adapts pkg/renderer's selection and execution into the
// pipeline's narrow Renderer interface.
type RenderDispatch struct {
	standard renderer.Renderer
	gl       renderer.Renderer
	tempDir  string
	mediaDir string
	criteria renderer.Criteria
}

// NewRenderDispatch builds a RenderDispatch writing scene files under
// tempDir and expecting render output under mediaDir.
func NewRenderDispatch(standard, gl renderer.Renderer, tempDir, mediaDir string, criteria renderer.Criteria) *RenderDispatch {
	return &RenderDispatch{standard: standard, gl: gl, tempDir: tempDir, mediaDir: mediaDir, criteria: criteria}
}

func (d *RenderDispatch) Render(ctx context.Context, jc *JobContext) error {
	selection, err := renderer.Select(d.standard, d.gl, d.criteria)
	if err != nil {
		return fmt.Errorf("render dispatch: %w", err)
	}

	jobTempDir := filepath.Join(d.tempDir, jc.Job.ID)
	if mkErr := os.MkdirAll(jobTempDir, 0o755); mkErr != nil {
		return fmt.Errorf("render dispatch: creating temp dir: %w", mkErr)
	}

	opts := renderer.RenderOptions{
		Code:     jc.GeneratedCode,
		Quality:  jc.Job.Quality,
		TempDir:  jobTempDir,
		MediaDir: d.mediaDir,
		JobID:    jc.Job.ID,
	}

	renderCtx, cancel := context.WithTimeout(ctx, renderer.RenderTimeout(jc.Job.Quality))
	defer cancel()

	result, err := selection.Renderer.Render(renderCtx, opts)
	if err != nil {
		return err
	}

	jc.VideoURL = mediaURL(d.mediaDir, result.VideoPath)
	jc.RenderTime = result.Duration
	return nil
}

// mediaURL turns an absolute render output path into the /media/*filepath
// route the gateway serves it under.
func mediaURL(mediaDir, videoPath string) string {
	rel, err := filepath.Rel(mediaDir, videoPath)
	if err != nil {
		rel = filepath.Base(videoPath)
	}
	return "/media/" + filepath.ToSlash(strings.TrimPrefix(rel, string(filepath.Separator)))
}
