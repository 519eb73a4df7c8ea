package renderer

import "strings"

const (
	standardImport = "from manim import *"
	glImport       = "from manimlib import *"
)

// transformToStandard rewrites GL-dialect code into the standard
// dialect's import line. String-level and idempotent: running it twice
// produces the same result as running it once.
func transformToStandard(code string) string {
	if !strings.Contains(code, glImport) {
		return code
	}
	return strings.ReplaceAll(code, glImport, standardImport)
}

// transformToGL rewrites standard-dialect code into the GL dialect:
// the import line, camera-orientation calls, and ambient-rotation
// start/stop pairs. String-level and idempotent.
func transformToGL(code string) string {
	if !strings.Contains(code, standardImport) {
		return code
	}
	out := strings.ReplaceAll(code, standardImport, glImport)
	out = rewriteCameraOrientation(out)
	out = rewriteAmbientRotation(out)
	return out
}

// rewriteCameraOrientation maps the standard dialect's
// set_camera_orientation(...) calls onto the GL renderer's Euler-angle
// frame updater equivalent.
func rewriteCameraOrientation(code string) string {
	return strings.ReplaceAll(code,
		"self.set_camera_orientation(",
		"self.camera.frame.set_euler_angles(")
}

// rewriteAmbientRotation maps begin_ambient_camera_rotation/
// stop_ambient_camera_rotation onto the GL renderer's
// add_updater/clear_updaters pair.
func rewriteAmbientRotation(code string) string {
	const begin = "self.begin_ambient_camera_rotation(rate="
	var b strings.Builder
	for {
		i := strings.Index(code, begin)
		if i < 0 {
			break
		}
		rest := code[i+len(begin):]
		j := strings.IndexByte(rest, ')')
		if j < 0 {
			break
		}
		b.WriteString(code[:i] + "self.camera.frame.add_updater(lambda m, dt: m.increment_theta(dt * " + rest[:j] + "))")
		code = rest[j+1:]
	}
	b.WriteString(code)
	out := strings.ReplaceAll(b.String(),
		"self.stop_ambient_camera_rotation()",
		"self.camera.frame.clear_updaters()")
	return out
}
