// Package renderer implements the two render backends (standard,
// GPU-accelerated) and the selection logic choosing between them, plus
// child-process supervision for the actual render run.
package renderer

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// EnvProbe is the cached result of inspecting the host environment once.
// The environment doesn't change mid-process, so the probe is collapsed
// to a one-shot sync.Once rather than the teacher's periodic health-check
// loop.
type EnvProbe struct {
	IsDocker    bool
	HasGPU      bool
	HasDisplay  bool
	HasStandard bool
	HasGL       bool
}

var (
	probeOnce   sync.Once
	cachedProbe EnvProbe
)

// Probe returns the cached environment probe, computing it on first call.
func Probe() EnvProbe {
	probeOnce.Do(func() {
		cachedProbe = EnvProbe{
			IsDocker:    detectDocker(),
			HasGPU:      detectGPU(),
			HasDisplay:  detectDisplay(),
			HasStandard: detectStandard(),
			HasGL:       detectGL(),
		}
	})
	return cachedProbe
}

func detectDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	data, err := os.ReadFile("/proc/1/cgroup")
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "docker") || strings.Contains(string(data), "kubepods")
}

func detectGPU() bool {
	if runtime.GOOS == "darwin" {
		return true // Metal is always present on macOS
	}
	if _, err := exec.LookPath("nvidia-smi"); err == nil {
		return true
	}
	_, err := os.Stat("/dev/dri")
	return err == nil
}

func detectDisplay() bool {
	switch runtime.GOOS {
	case "darwin":
		return true
	case "windows":
		return os.Getenv("SESSIONNAME") != "" || true // explorer.exe session implies a display
	default:
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
}

func detectStandard() bool {
	_, err := exec.LookPath("manim")
	return err == nil
}

func detectGL() bool {
	_, err := exec.LookPath("manimgl")
	return err == nil
}
