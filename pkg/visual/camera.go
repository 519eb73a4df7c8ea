package visual

import (
	"github.com/conceptreel/conceptreel/pkg/model"
	"github.com/conceptreel/conceptreel/pkg/styles"
)

// cameraProfile is the per-beat-type camera behavior before style clamping.
type cameraProfile struct {
	zoom     float64
	position [3]float64
	rotation float64
	easing   string
}

var cameraProfiles = map[model.BeatType]cameraProfile{
	model.BeatIntro:         {zoom: 1.0, position: [3]float64{0, 0, 0}, rotation: 0, easing: "ease-out"},
	model.BeatSetup:         {zoom: 1.2, position: [3]float64{0, 0.2, 0}, rotation: 0.1, easing: "ease-in-out"},
	model.BeatExplanation:   {zoom: 1.5, position: [3]float64{0.3, 0, 0}, rotation: 0.2, easing: "ease-in-out"},
	model.BeatClimax:        {zoom: 2.5, position: [3]float64{0, 0, 0.5}, rotation: 0.4, easing: "ease-out"},
	model.BeatReveal:        {zoom: 2.0, position: [3]float64{0, 0.3, 0}, rotation: 0.3, easing: "ease-out"},
	model.BeatDemonstration: {zoom: 1.8, position: [3]float64{-0.3, 0, 0}, rotation: 0.25, easing: "linear"},
	model.BeatResolution:    {zoom: 1.3, position: [3]float64{0, 0, 0}, rotation: 0.1, easing: "ease-in-out"},
	model.BeatConclusion:    {zoom: 1.0, position: [3]float64{0, 0, 0}, rotation: 0, easing: "ease-in"},
}

// cameraKeyframesFor emits one keyframe per non-transition beat, zoom
// clamped by the style's maxZoom and rotation forced to zero when the
// style forbids it, and attaches each keyframe to its beat.
func cameraKeyframesFor(beats []model.Beat, preset styles.Preset, is3D bool) []model.Keyframe {
	var keyframes []model.Keyframe
	for i := range beats {
		b := &beats[i]
		if b.Type == model.BeatTransition {
			continue
		}
		profile, ok := cameraProfiles[b.Type]
		if !ok {
			continue
		}

		zoom := profile.zoom
		if zoom > preset.MaxZoom {
			zoom = preset.MaxZoom
		}
		rotation := profile.rotation
		if !preset.RotationAllowed {
			rotation = 0
		}

		kf := model.Keyframe{
			Time: b.Time, Position: profile.position, Is3D: is3D,
			Zoom: zoom, Rotation: rotation, Easing: profile.easing, Duration: b.Duration,
		}
		if is3D {
			phi := 0.3 + rotation
			theta := 0.6 + rotation/2
			kf.Phi = &phi
			kf.Theta = &theta
		}

		b.Camera = &kf
		keyframes = append(keyframes, kf)
	}
	return keyframes
}
