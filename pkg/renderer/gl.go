package renderer

import (
	"context"
	"os/exec"
	"time"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// GLRenderer wraps manimgl: GPU shaders, real-time preview, interactive
// session support, requires a display.
type GLRenderer struct{}

// NewGLRenderer returns a ready GLRenderer. It holds no state.
func NewGLRenderer() *GLRenderer { return &GLRenderer{} }

func (r *GLRenderer) Name() string { return "gl" }

func (r *GLRenderer) IsAvailable() bool { return Probe().HasGL }

func (r *GLRenderer) GetVersion() string {
	out, err := exec.Command("manimgl", "--version").Output()
	if err != nil {
		return ""
	}
	return string(out)
}

func (r *GLRenderer) TransformCode(code string) string {
	return transformToGL(code)
}

func (r *GLRenderer) GetQualityFlag(q model.Quality) string {
	switch q {
	case model.QualityLow:
		return "-l"
	case model.QualityMedium:
		return "-m"
	case model.QualityHigh:
		return "-hd"
	default:
		return "-l"
	}
}

// GetCommand builds the manimgl invocation. Per the fix to the
// upstream-observed bug, a non-interactive render passes --write_file
// alone: --skip_animations together with --write_file would produce no
// video at all, so the two are never emitted together.
func (r *GLRenderer) GetCommand(opts RenderOptions) Command {
	args := []string{"scene.py", "MainScene", r.GetQualityFlag(opts.Quality)}
	if opts.Interactive {
		args = append(args, "--uncached_renderer")
	} else {
		args = append(args, "--write_file")
	}
	return Command{Program: "manimgl", Args: args}
}

func (r *GLRenderer) FindVideoFile(mediaDir string, q model.Quality) (string, error) {
	return findVideoFile(mediaDir, q)
}

func (r *GLRenderer) Render(ctx context.Context, opts RenderOptions) (RenderResult, error) {
	start := time.Now()
	code := r.TransformCode(opts.Code)
	cmd := r.GetCommand(opts)

	stdout, stderr, err := runChild(ctx, cmd, code, opts.TempDir)
	result := RenderResult{Stdout: stdout, Stderr: stderr, Duration: time.Since(start)}
	if err != nil {
		return result, &RenderError{Stage: "gl-render", Stderr: stderr, Err: err}
	}

	videoPath, findErr := r.FindVideoFile(opts.MediaDir, opts.Quality)
	if findErr != nil {
		return result, &RenderError{Stage: "gl-render", Stderr: stderr, Err: findErr}
	}
	result.VideoPath = videoPath
	return result, nil
}
