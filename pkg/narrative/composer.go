// Package narrative builds the pedagogical Narrative: a story arc (hook,
// rising action, climax, resolution) plus the deterministic verbose
// prompt handed to the code generator.
package narrative

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/conceptreel/conceptreel/pkg/knowledge"
	"github.com/conceptreel/conceptreel/pkg/model"
)

var hookTemplates = []string{
	"Have you ever wondered what really happens when we talk about %s?",
	"Picture this: %s is hiding in plain sight all around you.",
	"What if I told you that %s connects to something far bigger than it looks?",
	"Let's start with a question most people get wrong about %s.",
	"There's a simple idea buried inside %s that changes how you see everything else.",
}

// Composer builds a Narrative from a concept, its knowledge tree, math
// enrichment, and visual design. rnd is injected for deterministic
// testing; production callers pass a source seeded from real entropy.
type Composer struct {
	rnd *rand.Rand
}

// NewComposer returns a Composer drawing hook selection from rnd. A nil
// rnd falls back to a source with the fixed seed 1, so hook selection is
// then the same on every run.
func NewComposer(rnd *rand.Rand) *Composer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	return &Composer{rnd: rnd}
}

// Compose builds the full Narrative for the job.
func (c *Composer) Compose(concept string, tree model.KnowledgeTree, math model.MathEnrichment, design model.VisualDesign, objectives []string) model.Narrative {
	arc := model.StoryArc{
		Hook:         fmt.Sprintf(hookTemplates[c.rnd.Intn(len(hookTemplates))], concept),
		RisingAction: risingActionSegments(tree),
		Climax:       climaxSegment(concept),
		Resolution:   resolutionSegments(concept, c.rnd),
		Takeaway:     fmt.Sprintf("Understanding %s starts with the pieces that build up to it.", concept),
	}

	n := model.Narrative{
		Arcs:               []model.StoryArc{arc},
		LearningObjectives: objectives,
	}
	n.TotalDuration = arcDuration(arc)
	n.VerbosePrompt = buildVerbosePrompt(concept, design, arc, math, tree, objectives)
	n.WordCount = len(strings.Fields(n.VerbosePrompt))
	return n
}

func risingActionSegments(tree model.KnowledgeTree) []model.Segment {
	nodes := knowledge.NodesByDescendingDepth(tree)
	if len(nodes) > 4 {
		nodes = nodes[:4]
	}

	segments := make([]model.Segment, 0, len(nodes))
	for _, n := range nodes {
		segments = append(segments, model.Segment{
			Narration:  fmt.Sprintf("Before we go further, let's understand %s.", n.Concept),
			KeyPoints:  []string{n.Description},
			VisualCues: []string{"highlight:" + n.Concept},
			Duration:   float64(n.ExplanationTime),
			Tone:       model.ToneContemplative,
		})
	}
	return segments
}

func climaxSegment(concept string) model.Segment {
	return model.Segment{
		Narration:          fmt.Sprintf("And that's when it all comes together: %s.", concept),
		KeyPoints:          []string{concept},
		VisualCues:         []string{"reveal:" + concept},
		Duration:           10,
		Tone:               model.ToneExcited,
		RhetoricalQuestion: "See how it all fits now?",
	}
}

func resolutionSegments(concept string, rnd *rand.Rand) []model.Segment {
	segments := []model.Segment{
		{
			Narration:  fmt.Sprintf("So %s isn't so mysterious after all.", concept),
			Duration:   6,
			Tone:       model.ToneCalm,
			VisualCues: []string{"wide-shot"},
		},
	}
	if rnd.Intn(2) == 1 {
		segments = append(segments, model.Segment{
			Narration: "And now you can spot it everywhere you look.",
			Duration:  4,
			Tone:      model.ToneTriumphant,
		})
	}
	return segments
}

func arcDuration(arc model.StoryArc) float64 {
	total := arc.Climax.Duration
	for _, s := range arc.RisingAction {
		total += s.Duration
	}
	for _, s := range arc.Resolution {
		total += s.Duration
	}
	return total
}
