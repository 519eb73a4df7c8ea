package renderer

import "fmt"

// Criteria bundles what a caller wants from renderer selection.
type Criteria struct {
	Interactive       bool
	GPUShaders        bool
	RealTimePreview   bool
	DockerRequired    bool
	PreferGPU         bool
	PreferredRenderer string
	RequiredFeatures  []string
}

// SelectionResult is the outcome of Select.
type SelectionResult struct {
	Renderer            Renderer
	Reason              string
	Warnings            []string
	UnavailableFeatures []string
}

// featureOwners maps a named feature to the renderer(s) that support it,
// used by rule 6 (requiredFeatures satisfied only by one renderer).
var featureOwners = map[string][]string{
	"gpu_shaders":       {"gl"},
	"interactivity":     {"gl"},
	"real_time_preview": {"gl"},
	"docker_safe":       {"standard"},
}

// Select runs the ten-rule first-match-wins decision table against the
// environment probe and c.
func Select(standard Renderer, gl Renderer, c Criteria) (SelectionResult, error) {
	probe := Probe()
	var warnings []string

	// Rule 1: preferredRenderer if available, else warn and continue.
	if c.PreferredRenderer != "" {
		switch c.PreferredRenderer {
		case "standard":
			if standard.IsAvailable() {
				return SelectionResult{Renderer: standard, Reason: "preferred renderer requested"}, nil
			}
			warnings = append(warnings, "preferred renderer 'standard' unavailable")
		case "gl":
			if gl.IsAvailable() {
				return SelectionResult{Renderer: gl, Reason: "preferred renderer requested"}, nil
			}
			warnings = append(warnings, "preferred renderer 'gl' unavailable")
		default:
			warnings = append(warnings, fmt.Sprintf("unknown preferred renderer %q", c.PreferredRenderer))
		}
	}

	// Rule 2: interactive -> GL if GL + display present.
	if c.Interactive && gl.IsAvailable() && probe.HasDisplay {
		return SelectionResult{Renderer: gl, Reason: "interactive session requires GL", Warnings: warnings}, nil
	}

	// Rule 3: gpuShaders -> GL if GL + GPU present.
	if c.GPUShaders && gl.IsAvailable() && probe.HasGPU {
		return SelectionResult{Renderer: gl, Reason: "GPU shaders requested", Warnings: warnings}, nil
	}

	// Rule 4: realTimePreview -> GL if GL + display present.
	if c.RealTimePreview && gl.IsAvailable() && probe.HasDisplay {
		return SelectionResult{Renderer: gl, Reason: "real-time preview requested", Warnings: warnings}, nil
	}

	// Rule 5: dockerRequired or isDocker -> Standard.
	if (c.DockerRequired || probe.IsDocker) && standard.IsAvailable() {
		return SelectionResult{Renderer: standard, Reason: "docker environment requires standard renderer", Warnings: warnings}, nil
	}

	// Rule 6: requiredFeatures satisfied only by GL/Standard.
	if len(c.RequiredFeatures) > 0 {
		if res, ok := selectByRequiredFeatures(standard, gl, c.RequiredFeatures, warnings); ok {
			return res, nil
		}
	}

	// Rule 7: preferGPU + GPU + GL.
	if c.PreferGPU && probe.HasGPU && gl.IsAvailable() {
		return SelectionResult{Renderer: gl, Reason: "GPU preferred and available", Warnings: warnings}, nil
	}

	// Rule 8: default -> Standard if available.
	if standard.IsAvailable() {
		return SelectionResult{Renderer: standard, Reason: "default renderer", Warnings: warnings}, nil
	}

	// Rule 9: fallback -> GL if available.
	if gl.IsAvailable() {
		return SelectionResult{Renderer: gl, Reason: "fallback to GL, standard unavailable", Warnings: warnings}, nil
	}

	// Rule 10: else fail.
	return SelectionResult{Warnings: warnings, UnavailableFeatures: c.RequiredFeatures}, ErrNoRenderer
}

func selectByRequiredFeatures(standard, gl Renderer, features []string, warnings []string) (SelectionResult, bool) {
	needsGLOnly, needsStandardOnly := false, false
	var unavailable []string

	for _, f := range features {
		owners, known := featureOwners[f]
		if !known {
			unavailable = append(unavailable, f)
			continue
		}
		for _, owner := range owners {
			if owner == "gl" {
				needsGLOnly = true
			}
			if owner == "standard" {
				needsStandardOnly = true
			}
		}
	}

	switch {
	case needsGLOnly && !needsStandardOnly && gl.IsAvailable():
		return SelectionResult{Renderer: gl, Reason: "required features satisfied only by GL", Warnings: warnings, UnavailableFeatures: unavailable}, true
	case needsStandardOnly && !needsGLOnly && standard.IsAvailable():
		return SelectionResult{Renderer: standard, Reason: "required features satisfied only by standard", Warnings: warnings, UnavailableFeatures: unavailable}, true
	}
	return SelectionResult{}, false
}
