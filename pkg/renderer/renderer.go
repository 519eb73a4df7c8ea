package renderer

import (
	"context"
	"errors"
	"time"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// ErrNoRenderer is returned by Select when no renderer satisfies the
// criteria bundle at all (selection rule 10).
var ErrNoRenderer = errors.New("renderer: no renderer available")

// ErrRenderFailed wraps a non-zero exit or missing output file.
var ErrRenderFailed = errors.New("renderer: render failed")

// QualityFolder maps a quality level to manim's output folder naming.
func QualityFolder(q model.Quality) string {
	switch q {
	case model.QualityLow:
		return "480p15"
	case model.QualityMedium:
		return "720p30"
	case model.QualityHigh:
		return "1080p60"
	default:
		return "480p15"
	}
}

// RenderTimeout maps a quality level to the maximum time a render is
// allowed to run.
func RenderTimeout(q model.Quality) time.Duration {
	switch q {
	case model.QualityLow:
		return 60 * time.Second
	case model.QualityMedium:
		return 180 * time.Second
	case model.QualityHigh:
		return 600 * time.Second
	default:
		return 60 * time.Second
	}
}

// Command is the executable + arguments a renderer builds for one render.
type Command struct {
	Program string
	Args    []string
}

// RenderOptions bundles everything a render pass needs.
type RenderOptions struct {
	Code        string
	Quality     model.Quality
	TempDir     string
	MediaDir    string
	JobID       string
	Interactive bool
}

// RenderResult is the outcome of one render pass.
type RenderResult struct {
	VideoPath string
	Stdout    string
	Stderr    string
	Duration  time.Duration
}

// Renderer is the common interface StandardRenderer and GLRenderer both
// implement.
type Renderer interface {
	Name() string
	IsAvailable() bool
	GetVersion() string
	TransformCode(code string) string
	GetQualityFlag(q model.Quality) string
	GetCommand(opts RenderOptions) Command
	FindVideoFile(mediaDir string, q model.Quality) (string, error)
	Render(ctx context.Context, opts RenderOptions) (RenderResult, error)
}
