package knowledge

import "strings"

// ruleTable is the built-in substring-keyed fallback used when the
// provider path fails for a node. A small representative seed — this is a
// fallback of last resort, not the primary content source.
var ruleTable = []struct {
	substr string
	prereqs []string
}{
	{"derivative", []string{"limits", "functions", "slopes"}},
	{"integral", []string{"derivatives", "area under a curve", "riemann sums"}},
	{"pythagorean", []string{"right triangles", "squares", "area"}},
	{"matrix", []string{"vectors", "linear equations", "arrays"}},
	{"eigenvalue", []string{"matrices", "linear transformations", "determinants"}},
	{"fourier", []string{"periodic functions", "sine and cosine", "frequency"}},
	{"probability", []string{"sets", "counting", "fractions"}},
	{"limit", []string{"functions", "sequences", "continuity"}},
}

// ruleFallback returns built-in prerequisite suggestions keyed by the
// first substring match on concept, or a generic empty list if nothing
// matches — a leaf node is a valid result.
func ruleFallback(concept string) []Suggestion {
	lower := strings.ToLower(concept)
	for _, rule := range ruleTable {
		if strings.Contains(lower, rule.substr) {
			out := make([]Suggestion, 0, len(rule.prereqs))
			for _, p := range rule.prereqs {
				out = append(out, Suggestion{
					Concept:          p,
					Description:      "Foundational concept needed to understand " + concept,
					FundamentalScore: 0.6,
					ExplanationTime:  20,
				})
			}
			return out
		}
	}
	return nil
}
