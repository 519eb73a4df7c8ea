package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conceptreel/conceptreel/pkg/model"
)

func TestQualityFolderMapping(t *testing.T) {
	assert.Equal(t, "480p15", QualityFolder(model.QualityLow))
	assert.Equal(t, "720p30", QualityFolder(model.QualityMedium))
	assert.Equal(t, "1080p60", QualityFolder(model.QualityHigh))
}

func TestGLCommandNeverEmitsSkipAnimationsWithWriteFile(t *testing.T) {
	gl := NewGLRenderer()
	cmd := gl.GetCommand(RenderOptions{Quality: model.QualityLow, Interactive: false})

	hasSkip := contains(cmd.Args, "--skip_animations")
	hasWrite := contains(cmd.Args, "--write_file")
	assert.False(t, hasSkip && hasWrite, "GL command must never emit both --skip_animations and --write_file")
	assert.True(t, hasWrite, "non-interactive render must request a written file")
}

func TestTransformToGLRewritesImportAndCameraCalls(t *testing.T) {
	code := "from manim import *\nself.set_camera_orientation(phi=0.3)\nself.begin_ambient_camera_rotation(rate=0.1)\nself.stop_ambient_camera_rotation()"
	out := transformToGL(code)
	assert.Contains(t, out, "from manimlib import *")
	assert.NotContains(t, out, "from manim import *")
	assert.Contains(t, out, "self.camera.frame.set_euler_angles(")
	assert.Contains(t, out, "self.camera.frame.clear_updaters()")
}

func TestTransformIsIdempotent(t *testing.T) {
	code := "from manim import *\nclass MainScene(Scene): pass"
	once := transformToGL(code)
	twice := transformToGL(once)
	assert.Equal(t, once, twice)
}

func TestTransformToStandardRewritesImport(t *testing.T) {
	code := "from manimlib import *\nclass MainScene(Scene): pass"
	out := transformToStandard(code)
	assert.Contains(t, out, "from manim import *")
}

func contains(ss []string, target string) bool {
	for _, s := range ss {
		if s == target {
			return true
		}
	}
	return false
}

// fakeSelRenderer is a minimal stand-in satisfying the Renderer interface,
// used only to drive Select's decision table without invoking a real
// child process.
type fakeSelRenderer struct {
	name      string
	available bool
}

func (f *fakeSelRenderer) Name() string       { return f.name }
func (f *fakeSelRenderer) IsAvailable() bool  { return f.available }
func (f *fakeSelRenderer) GetVersion() string { return "" }
func (f *fakeSelRenderer) TransformCode(code string) string      { return code }
func (f *fakeSelRenderer) GetQualityFlag(q model.Quality) string { return "" }
func (f *fakeSelRenderer) GetCommand(opts RenderOptions) Command { return Command{} }
func (f *fakeSelRenderer) FindVideoFile(dir string, q model.Quality) (string, error) {
	return "", nil
}
func (f *fakeSelRenderer) Render(ctx context.Context, opts RenderOptions) (RenderResult, error) {
	return RenderResult{}, nil
}

func TestSelectPrefersPreferredRendererWhenAvailable(t *testing.T) {
	std := &fakeSelRenderer{name: "standard", available: true}
	gl := &fakeSelRenderer{name: "gl", available: true}
	res, err := Select(std, gl, Criteria{PreferredRenderer: "gl"})
	assert.NoError(t, err)
	assert.Equal(t, "gl", res.Renderer.Name())
}

func TestSelectDefaultsToStandard(t *testing.T) {
	std := &fakeSelRenderer{name: "standard", available: true}
	gl := &fakeSelRenderer{name: "gl", available: true}
	res, err := Select(std, gl, Criteria{})
	assert.NoError(t, err)
	assert.Equal(t, "standard", res.Renderer.Name())
}

func TestSelectFailsWhenNothingAvailable(t *testing.T) {
	std := &fakeSelRenderer{name: "standard", available: false}
	gl := &fakeSelRenderer{name: "gl", available: false}
	_, err := Select(std, gl, Criteria{})
	assert.ErrorIs(t, err, ErrNoRenderer)
}

func TestSelectFallsBackToGLWhenStandardUnavailable(t *testing.T) {
	std := &fakeSelRenderer{name: "standard", available: false}
	gl := &fakeSelRenderer{name: "gl", available: true}
	res, err := Select(std, gl, Criteria{})
	assert.NoError(t, err)
	assert.Equal(t, "gl", res.Renderer.Name())
}

func TestSelectRequiredFeatureSatisfiedOnlyByGL(t *testing.T) {
	std := &fakeSelRenderer{name: "standard", available: true}
	gl := &fakeSelRenderer{name: "gl", available: true}
	res, err := Select(std, gl, Criteria{RequiredFeatures: []string{"gpu_shaders"}})
	assert.NoError(t, err)
	assert.Equal(t, "gl", res.Renderer.Name())
}
