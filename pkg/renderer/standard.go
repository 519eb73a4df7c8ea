package renderer

import (
	"context"
	"os/exec"
	"time"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// StandardRenderer wraps manim: stable, Docker-friendly, no GPU shaders,
// no interactivity.
type StandardRenderer struct{}

// NewStandardRenderer returns a ready StandardRenderer. It holds no state.
func NewStandardRenderer() *StandardRenderer { return &StandardRenderer{} }

func (r *StandardRenderer) Name() string { return "standard" }

func (r *StandardRenderer) IsAvailable() bool { return Probe().HasStandard }

func (r *StandardRenderer) GetVersion() string {
	out, err := exec.Command("manim", "--version").Output()
	if err != nil {
		return ""
	}
	return string(out)
}

func (r *StandardRenderer) TransformCode(code string) string {
	return transformToStandard(code)
}

func (r *StandardRenderer) GetQualityFlag(q model.Quality) string {
	switch q {
	case model.QualityLow:
		return "-ql"
	case model.QualityMedium:
		return "-qm"
	case model.QualityHigh:
		return "-qh"
	default:
		return "-ql"
	}
}

func (r *StandardRenderer) GetCommand(opts RenderOptions) Command {
	return Command{
		Program: "manim",
		Args:    []string{"render", r.GetQualityFlag(opts.Quality), "scene.py", "MainScene"},
	}
}

func (r *StandardRenderer) FindVideoFile(mediaDir string, q model.Quality) (string, error) {
	return findVideoFile(mediaDir, q)
}

func (r *StandardRenderer) Render(ctx context.Context, opts RenderOptions) (RenderResult, error) {
	start := time.Now()
	code := r.TransformCode(opts.Code)
	cmd := r.GetCommand(opts)

	stdout, stderr, err := runChild(ctx, cmd, code, opts.TempDir)
	result := RenderResult{Stdout: stdout, Stderr: stderr, Duration: time.Since(start)}
	if err != nil {
		return result, &RenderError{Stage: "standard-render", Stderr: stderr, Err: err}
	}

	videoPath, findErr := r.FindVideoFile(opts.MediaDir, opts.Quality)
	if findErr != nil {
		return result, &RenderError{Stage: "standard-render", Stderr: stderr, Err: findErr}
	}
	result.VideoPath = videoPath
	return result, nil
}
