package narrative

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptreel/conceptreel/pkg/model"
)

func sampleTree() model.KnowledgeTree {
	root := model.KnowledgeNode{
		ID: "root", Concept: "derivatives", Depth: 0,
		Prerequisites: []model.KnowledgeNode{
			{ID: "a", Concept: "limits", Depth: 1, Description: "the basis of calculus", ExplanationTime: 20},
			{ID: "b", Concept: "functions", Depth: 1, Description: "input-output mappings", ExplanationTime: 15},
		},
	}
	return model.KnowledgeTree{Root: root, TotalNodes: 3, LearningPath: []string{"a", "b", "root"}}
}

func TestComposeProducesDeterministicPromptForFixedSeed(t *testing.T) {
	c1 := NewComposer(rand.New(rand.NewSource(42)))
	c2 := NewComposer(rand.New(rand.NewSource(42)))

	tree := sampleTree()
	design := model.VisualDesign{ColorPalette: []string{"#111"}, TotalDuration: 30}
	math := model.MathEnrichment{}

	n1 := c1.Compose("derivatives", tree, math, design, []string{"understand slopes"})
	n2 := c2.Compose("derivatives", tree, math, design, []string{"understand slopes"})

	assert.Equal(t, n1.VerbosePrompt, n2.VerbosePrompt)
	assert.Equal(t, n1.Arcs[0].Hook, n2.Arcs[0].Hook)
}

func TestComposeRisingActionUsesTopFourDeepestNodes(t *testing.T) {
	c := NewComposer(rand.New(rand.NewSource(1)))
	n := c.Compose("derivatives", sampleTree(), model.MathEnrichment{}, model.VisualDesign{}, nil)
	assert.LessOrEqual(t, len(n.Arcs[0].RisingAction), 4)
}

func TestComposeVerbosePromptHasAllSections(t *testing.T) {
	c := NewComposer(rand.New(rand.NewSource(7)))
	n := c.Compose("derivatives", sampleTree(), model.MathEnrichment{}, model.VisualDesign{}, []string{"obj1"})

	for _, section := range []string{
		"=== CONCEPT ===", "=== OBJECTIVES ===", "=== STORY ARC ===",
		"=== VISUAL DESIGN ===", "=== MATHEMATICAL CONTENT ===",
		"=== KNOWLEDGE HIERARCHY ===", "=== IMPLEMENTATION INSTRUCTIONS ===",
	} {
		assert.Contains(t, n.VerbosePrompt, section)
	}
}

func TestComposeWordCountMatchesPrompt(t *testing.T) {
	c := NewComposer(rand.New(rand.NewSource(3)))
	n := c.Compose("derivatives", sampleTree(), model.MathEnrichment{}, model.VisualDesign{}, nil)
	require.Equal(t, len(strings.Fields(n.VerbosePrompt)), n.WordCount)
}

func TestComposeClimaxReferencesMainConcept(t *testing.T) {
	c := NewComposer(rand.New(rand.NewSource(9)))
	n := c.Compose("the Pythagorean theorem", sampleTree(), model.MathEnrichment{}, model.VisualDesign{}, nil)
	assert.Contains(t, n.Arcs[0].Climax.Narration, "the Pythagorean theorem")
}
