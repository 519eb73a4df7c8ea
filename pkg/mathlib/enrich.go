package mathlib

import (
	"context"
	"strings"

	"github.com/conceptreel/conceptreel/pkg/model"
	"github.com/conceptreel/conceptreel/pkg/providers"
	"github.com/conceptreel/conceptreel/pkg/styles"
)

// Enricher accumulates MathEnrichment from the static library and,
// quality permitting, the provider federation's math_enrichment task.
type Enricher struct {
	chain *providers.FallbackChain
}

// NewEnricher builds an Enricher over chain. chain may be nil: provider
// enrichment is then skipped and only the static library is searched.
func NewEnricher(chain *providers.FallbackChain) *Enricher {
	return &Enricher{chain: chain}
}

// Enrich searches the static library by case-insensitive substring over
// tags/name/statement, optionally merges provider suggestions when
// quality != low, dedups, assigns color coding, and truncates to the caps
// in pkg/model.
func (e *Enricher) Enrich(ctx context.Context, concept string, quality model.Quality, style model.Style) model.MathEnrichment {
	needle := strings.ToLower(concept)

	var out model.MathEnrichment
	seenEq := map[string]bool{}
	seenThm := map[string]bool{}
	seenDef := map[string]bool{}

	for _, eq := range equationLibrary {
		if matchesEquation(eq, needle) && !seenEq[eq.ID] {
			seenEq[eq.ID] = true
			out.Equations = append(out.Equations, eq)
		}
	}
	for _, th := range theoremLibrary {
		if matchesTheorem(th, needle) && !seenThm[th.ID] {
			seenThm[th.ID] = true
			out.Theorems = append(out.Theorems, th)
		}
	}
	for _, def := range definitionLibrary {
		key := strings.ToLower(def.Term)
		if strings.Contains(needle, key) && !seenDef[key] {
			seenDef[key] = true
			out.Definitions = append(out.Definitions, def)
		}
	}

	out.Visualizations = visualizationsFor(needle)

	if quality != model.QualityLow && e.chain != nil {
		if sugg, err := providers.EnrichMath(ctx, e.chain, concept); err == nil {
			mergeProviderSuggestions(&out, sugg, seenThm, seenDef)
		}
	}

	assignColorCoding(&out, style)
	truncate(&out)
	return out
}

func matchesEquation(eq model.Equation, needle string) bool {
	if strings.Contains(strings.ToLower(eq.Name), needle) {
		return true
	}
	for _, tag := range eq.Tags {
		if strings.Contains(strings.ToLower(tag), needle) || strings.Contains(needle, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

func matchesTheorem(th model.Theorem, needle string) bool {
	if strings.Contains(strings.ToLower(th.Name), needle) || strings.Contains(strings.ToLower(th.Statement), needle) {
		return true
	}
	for _, tag := range th.Tags {
		if strings.Contains(strings.ToLower(tag), needle) || strings.Contains(needle, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

func visualizationsFor(needle string) []model.Visualization {
	var out []model.Visualization
	for _, tmpl := range visualizationTemplates {
		if strings.Contains(needle, tmpl.keyword) {
			out = append(out, tmpl.vis)
		}
	}
	return out
}

// mergeProviderSuggestions folds a provider's free-text suggestions into
// out: equations are appended as id-less entries keyed by their own text
// (the static library already covers dedup-by-id; provider equations have
// no stable id so they're always appended, matching the spec's "results
// are de-duplicated: equations by id" — a fresh id-less suggestion never
// collides).
func mergeProviderSuggestions(out *model.MathEnrichment, sugg providers.MathSuggestions, seenThm, seenDef map[string]bool) {
	for _, e := range sugg.Equations {
		out.Equations = append(out.Equations, model.Equation{Name: e, LaTeX: e})
	}
	for _, t := range sugg.Theorems {
		key := strings.ToLower(t)
		if seenThm[key] {
			continue
		}
		seenThm[key] = true
		out.Theorems = append(out.Theorems, model.Theorem{Name: t, Statement: t})
	}
	for _, d := range sugg.Definitions {
		key := strings.ToLower(d)
		if seenDef[key] {
			continue
		}
		seenDef[key] = true
		out.Definitions = append(out.Definitions, model.Definition{Term: d})
	}
	for _, v := range sugg.Visualizations {
		out.Visualizations = append(out.Visualizations, model.Visualization{Name: v})
	}
}

// assignColorCoding assigns a distinct palette color, round-robin, to
// every variable symbol collected across all equations.
func assignColorCoding(out *model.MathEnrichment, style model.Style) {
	palette := styles.For(style).Palette
	if len(palette) == 0 {
		return
	}
	out.ColorCoding = map[string]string{}
	i := 0
	for _, eq := range out.Equations {
		for _, v := range eq.Variables {
			if _, ok := out.ColorCoding[v]; ok {
				continue
			}
			out.ColorCoding[v] = palette[i%len(palette)]
			i++
		}
	}
}

func truncate(out *model.MathEnrichment) {
	if len(out.Equations) > model.MaxEquations {
		out.Equations = out.Equations[:model.MaxEquations]
	}
	if len(out.Theorems) > model.MaxTheorems {
		out.Theorems = out.Theorems[:model.MaxTheorems]
	}
	if len(out.Definitions) > model.MaxDefinitions {
		out.Definitions = out.Definitions[:model.MaxDefinitions]
	}
	if len(out.Visualizations) > model.MaxVisualizations {
		out.Visualizations = out.Visualizations[:model.MaxVisualizations]
	}
}
