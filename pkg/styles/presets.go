// Package styles holds the five visual style presets shared by the math
// enricher (color coding) and the visual designer (palette, typography,
// pacing, camera bounds).
package styles

import "github.com/conceptreel/conceptreel/pkg/model"

// Preset bundles everything a style preset contributes to a job's visual
// design and math color coding.
type Preset struct {
	Palette         []string
	FontName        string
	BaseFontSize    float64
	PacingMultiplier float64
	MaxZoom         float64
	RotationAllowed bool
}

var presets = map[model.Style]Preset{
	model.StyleThreeBlueOneBrown: {
		Palette:          []string{"#1C758A", "#1C3F5A", "#9ED6EC", "#EDEEF0", "#F2C849"},
		FontName:         "CMU Serif", BaseFontSize: 42,
		PacingMultiplier: 1.0, MaxZoom: 3.0, RotationAllowed: true,
	},
	model.StyleMinimal: {
		Palette:          []string{"#222222", "#555555", "#AAAAAA", "#FFFFFF"},
		FontName:         "Helvetica Neue", BaseFontSize: 36,
		PacingMultiplier: 1.1, MaxZoom: 1.5, RotationAllowed: false,
	},
	model.StyleVibrant: {
		Palette:          []string{"#FF3366", "#FFCC00", "#33CCFF", "#33FF99", "#CC33FF"},
		FontName:         "Poppins", BaseFontSize: 48,
		PacingMultiplier: 0.85, MaxZoom: 4.0, RotationAllowed: true,
	},
	model.StyleAcademic: {
		Palette:          []string{"#00274D", "#8A1538", "#4A4A4A", "#FFFFFF"},
		FontName:         "Georgia", BaseFontSize: 38,
		PacingMultiplier: 1.2, MaxZoom: 2.0, RotationAllowed: false,
	},
	model.StyleDark: {
		Palette:          []string{"#0D1117", "#58A6FF", "#3FB950", "#F85149", "#D2A8FF"},
		FontName:         "JetBrains Mono", BaseFontSize: 40,
		PacingMultiplier: 0.9, MaxZoom: 3.5, RotationAllowed: true,
	},
}

// For returns the preset for style, falling back to the 3blue1brown
// preset for an unrecognized value rather than a zero-value Preset (a
// pacing multiplier of 0 would stall beat timing entirely).
func For(style model.Style) Preset {
	if p, ok := presets[style]; ok {
		return p
	}
	return presets[model.StyleThreeBlueOneBrown]
}
