package narrative

import (
	"fmt"
	"strings"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// buildVerbosePrompt deterministically serializes everything the code
// generator needs into one text prompt, sections delimited by
// "=== SECTION ===" headers. Deterministic: same inputs always produce
// the same string, byte for byte.
func buildVerbosePrompt(concept string, design model.VisualDesign, arc model.StoryArc, math model.MathEnrichment, tree model.KnowledgeTree, objectives []string) string {
	var b strings.Builder

	section(&b, "CONCEPT", concept)
	section(&b, "OBJECTIVES", strings.Join(objectives, "\n"))
	section(&b, "STORY ARC", storyArcText(arc))
	section(&b, "VISUAL DESIGN", visualDesignText(design))
	section(&b, "MATHEMATICAL CONTENT", mathContentText(math))
	section(&b, "KNOWLEDGE HIERARCHY", hierarchyText(tree.Root, 0))
	section(&b, "IMPLEMENTATION INSTRUCTIONS", implementationInstructions())

	return b.String()
}

func section(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "=== %s ===\n%s\n\n", title, body)
}

func storyArcText(arc model.StoryArc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hook: %s\n", arc.Hook)
	for i, s := range arc.RisingAction {
		fmt.Fprintf(&b, "Rising action %d: %s\n", i+1, s.Narration)
	}
	fmt.Fprintf(&b, "Climax: %s\n", arc.Climax.Narration)
	for i, s := range arc.Resolution {
		fmt.Fprintf(&b, "Resolution %d: %s\n", i+1, s.Narration)
	}
	fmt.Fprintf(&b, "Takeaway: %s", arc.Takeaway)
	return b.String()
}

func visualDesignText(design model.VisualDesign) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Palette: %s\n", strings.Join(design.ColorPalette, ", "))
	fmt.Fprintf(&b, "Font: %s (base size %.0f)\n", design.Typography.FontName, design.Typography.BaseSize)
	fmt.Fprintf(&b, "Is3D: %t\n", design.Is3D)
	fmt.Fprintf(&b, "Total duration: %.1fs\n", design.TotalDuration)
	fmt.Fprintf(&b, "Beats: %d", len(design.TimingBeats))
	return b.String()
}

func mathContentText(math model.MathEnrichment) string {
	var b strings.Builder
	for _, eq := range math.Equations {
		fmt.Fprintf(&b, "Equation: %s (%s)\n", eq.Name, eq.LaTeX)
	}
	for _, th := range math.Theorems {
		fmt.Fprintf(&b, "Theorem: %s: %s\n", th.Name, th.Statement)
	}
	for _, def := range math.Definitions {
		fmt.Fprintf(&b, "Definition: %s: %s\n", def.Term, def.Explanation)
	}
	if b.Len() == 0 {
		return "(none)"
	}
	return strings.TrimRight(b.String(), "\n")
}

func hierarchyText(n model.KnowledgeNode, depth int) string {
	var b strings.Builder
	writeHierarchy(&b, n, depth)
	return strings.TrimRight(b.String(), "\n")
}

func writeHierarchy(b *strings.Builder, n model.KnowledgeNode, depth int) {
	fmt.Fprintf(b, "%s- %s\n", strings.Repeat("  ", depth), n.Concept)
	for _, c := range n.Prerequisites {
		writeHierarchy(b, c, depth+1)
	}
}

func implementationInstructions() string {
	return "Define a scene class named MainScene. Follow the visual design's " +
		"palette, typography, and timing beats. Use the story arc's narration " +
		"as voiceover text or on-screen captions."
}
