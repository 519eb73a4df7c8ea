// Package visual builds the VisualDesign: style-derived palette and
// typography, a sequential timing-beat composition, and a camera keyframe
// per non-transition beat.
package visual

import (
	"strconv"
	"strings"

	"github.com/conceptreel/conceptreel/pkg/model"
	"github.com/conceptreel/conceptreel/pkg/styles"
)

var dimensionKeywords = []string{
	"3d", "sphere", "torus", "cube", "surface", "volume", "rotate",
	"rotation", "manifold", "solid", "projection", "knot", "helix",
}

// baseDuration is each beat type's duration in seconds before the
// style's pacing multiplier is applied. Transition beats are a special
// case (0.5*pacing, not base*pacing) handled directly in Design.
var baseDuration = map[model.BeatType]float64{
	model.BeatIntro:         5,
	model.BeatSetup:         3,
	model.BeatExplanation:   8,
	model.BeatClimax:        10,
	model.BeatReveal:        6,
	model.BeatDemonstration: 8,
	model.BeatResolution:    6,
	model.BeatConclusion:    4,
}

// Designer builds a VisualDesign for one job.
type Designer struct{}

// NewDesigner returns a ready Designer. It holds no state.
func NewDesigner() *Designer { return &Designer{} }

// Design runs the five-step visual design procedure against the
// concept's knowledge tree and math enrichment.
func (d *Designer) Design(concept string, tree model.KnowledgeTree, math model.MathEnrichment, style model.Style) model.VisualDesign {
	preset := styles.For(style)

	design := model.VisualDesign{
		ColorPalette: preset.Palette,
		Typography: model.Typography{
			FontName: preset.FontName,
			BaseSize: preset.BaseFontSize,
			Scales:   map[string]float64{"title": 1.5, "body": 1.0, "caption": 0.7},
		},
		Is3D: probeIs3D(concept, tree, math),
	}

	design.TimingBeats = buildBeats(tree, preset)
	design.CameraKeyframes = cameraKeyframesFor(design.TimingBeats, preset, design.Is3D)
	design.Transitions = collectTransitionNames(design.TimingBeats)

	if n := len(design.TimingBeats); n > 0 {
		last := design.TimingBeats[n-1]
		design.TotalDuration = last.Time + last.Duration
	}
	return design
}

func probeIs3D(concept string, tree model.KnowledgeTree, math model.MathEnrichment) bool {
	haystack := strings.ToLower(concept)
	var walk func(model.KnowledgeNode)
	walk = func(n model.KnowledgeNode) {
		haystack += " " + strings.ToLower(n.Concept) + " " + strings.ToLower(n.Description)
		for _, c := range n.Prerequisites {
			walk(c)
		}
	}
	walk(tree.Root)

	for _, eq := range math.Equations {
		for _, tag := range eq.Tags {
			haystack += " " + strings.ToLower(tag)
		}
	}
	for _, v := range math.Visualizations {
		haystack += " " + strings.ToLower(v.Name) + " " + strings.ToLower(v.Description)
	}

	for _, kw := range dimensionKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// buildBeats lays out beats in the fixed sequence: intro, setup (if more
// than one node), one explanation beat per learning-path node (the last
// is climax, with transition beats interleaved between explanation
// beats), reveal, demonstration, resolution, conclusion.
func buildBeats(tree model.KnowledgeTree, preset styles.Preset) []model.Beat {
	var beats []model.Beat
	var t float64

	add := func(bt model.BeatType, tone model.Tone) {
		dur := baseDuration[bt] * preset.PacingMultiplier
		beats = append(beats, model.Beat{
			ID: beatID(bt, len(beats)), Time: t, Duration: dur, Type: bt, Tone: tone,
		})
		t += dur
	}
	addTransition := func() {
		dur := 0.5 * preset.PacingMultiplier
		beats = append(beats, model.Beat{
			ID: beatID(model.BeatTransition, len(beats)), Time: t, Duration: dur,
			Type: model.BeatTransition, Tone: model.ToneNeutral,
		})
		t += dur
	}

	add(model.BeatIntro, model.ToneCurious)
	if tree.TotalNodes > 1 {
		add(model.BeatSetup, model.ToneCalm)
	}

	nodeCount := len(tree.LearningPath)
	if nodeCount == 0 {
		nodeCount = 1
	}
	for i := 0; i < nodeCount; i++ {
		last := i == nodeCount-1
		bt := model.BeatExplanation
		tone := model.ToneContemplative
		if last {
			bt = model.BeatClimax
			tone = model.ToneExcited
		}
		add(bt, tone)
		if !last {
			addTransition()
		}
	}

	add(model.BeatReveal, model.ToneExcited)
	add(model.BeatDemonstration, model.ToneContemplative)
	add(model.BeatResolution, model.ToneCalm)
	add(model.BeatConclusion, model.ToneTriumphant)

	return beats
}

func beatID(bt model.BeatType, index int) string {
	return string(bt) + "-" + strconv.Itoa(index)
}

func collectTransitionNames(beats []model.Beat) []string {
	var out []string
	for _, b := range beats {
		if b.Type == model.BeatTransition {
			out = append(out, "fade")
		}
	}
	return out
}
