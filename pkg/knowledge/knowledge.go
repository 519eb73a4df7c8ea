// Package knowledge builds the bounded-depth prerequisite tree for a
// concept: a depth-first expansion guarded by MAX_DEPTH and a
// case-insensitive visited set, falling back to a built-in rule table when
// the provider path fails. Expansion is not breadth-first: each
// prerequisite's subtree is finished before its next sibling is expanded,
// so a concept reachable at two depths is kept where the depth-first walk
// reaches it first. Every mutation returns a new tree value —
// KnowledgeTree immutability per spec.md §9 — so agents never need a lock
// on the tree itself.
package knowledge

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// Suggestion is one prerequisite candidate, before clamping/bounding.
type Suggestion struct {
	Concept          string
	Description      string
	FundamentalScore float64
	ExplanationTime  int
}

// ExploreFunc expands one concept into 2-4 prerequisite suggestions. The
// whole call (and everything it depends on) is treated as a single
// failure unit: per spec.md §9's decision, a failure anywhere in the AI
// path for a node discards that node's partial AI progress and falls back
// to the rule table for the same node, rather than mixing AI-derived and
// rule-derived children under one parent.
type ExploreFunc func(ctx context.Context, concept string) ([]Suggestion, error)

const (
	maxConceptLen     = 50
	maxDescriptionLen = 200
	minExplanation    = 5
	maxExplanation    = 120
)

// Build constructs the full prerequisite tree for concept using explore,
// falling back to the built-in rule table per node on failure, stopping
// expansion at MaxDepth (nodes at that depth get no prerequisites), and
// computes the learning path.
func Build(ctx context.Context, concept string, explore ExploreFunc) model.KnowledgeTree {
	visited := map[string]bool{strings.ToLower(concept): true}
	root := buildNode(ctx, concept, 0, visited, explore)

	tree := model.KnowledgeTree{Root: root}
	tree.TotalNodes = countNodes(root)
	tree.MaxDepth = maxDepthOf(root)
	tree.LearningPath = postOrderIDs(root)
	return tree
}

func buildNode(ctx context.Context, concept string, depth int, visited map[string]bool, explore ExploreFunc) model.KnowledgeNode {
	node := model.KnowledgeNode{
		ID:               uuid.NewString(),
		Concept:          clampConcept(concept),
		FundamentalScore: 0.5,
		ExplanationTime:  30,
		Depth:            depth,
		Explored:         true,
	}

	if depth >= model.MaxDepth {
		return node
	}

	suggestions, err := tryExpand(ctx, concept, explore)
	if err != nil {
		suggestions = ruleFallback(concept)
	}

	for _, s := range suggestions {
		key := strings.ToLower(strings.TrimSpace(s.Concept))
		if key == "" || visited[key] {
			continue
		}
		visited[key] = true

		child := buildNode(ctx, s.Concept, depth+1, visited, explore)
		child.Description = clampDescription(s.Description)
		child.FundamentalScore = clampScore(s.FundamentalScore)
		child.ExplanationTime = clampExplanationTime(s.ExplanationTime)
		node.Prerequisites = append(node.Prerequisites, child)
	}
	return node
}

// tryExpand wraps the whole AI expansion path in one failure unit: a nil
// explore (no provider configured) or any returned error is treated
// identically, so the caller always falls back to the rule table rather
// than keeping a half-built branch.
func tryExpand(ctx context.Context, concept string, explore ExploreFunc) ([]Suggestion, error) {
	if explore == nil {
		return nil, errNoExplorer
	}
	return explore(ctx, concept)
}

var errNoExplorer = errNoExplorerErr{}

type errNoExplorerErr struct{}

func (errNoExplorerErr) Error() string { return "knowledge: no explore function configured" }

func clampConcept(s string) string {
	if len(s) > maxConceptLen {
		return s[:maxConceptLen]
	}
	return s
}

func clampDescription(s string) string {
	if len(s) > maxDescriptionLen {
		return s[:maxDescriptionLen]
	}
	return s
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampExplanationTime(v int) int {
	if v < minExplanation {
		return minExplanation
	}
	if v > maxExplanation {
		return maxExplanation
	}
	return v
}

func countNodes(n model.KnowledgeNode) int {
	total := 1
	for _, c := range n.Prerequisites {
		total += countNodes(c)
	}
	return total
}

func maxDepthOf(n model.KnowledgeNode) int {
	max := n.Depth
	for _, c := range n.Prerequisites {
		if d := maxDepthOf(c); d > max {
			max = d
		}
	}
	return max
}

// postOrderIDs lists node ids children-before-parent, the learning path's
// chronological spine.
func postOrderIDs(n model.KnowledgeNode) []string {
	var ids []string
	for _, c := range n.Prerequisites {
		ids = append(ids, postOrderIDs(c)...)
	}
	ids = append(ids, n.ID)
	return ids
}

// NodesByDescendingDepth returns every node in the tree sorted by
// descending depth, ties broken by first-seen (pre-order) position —
// used by the narrative composer to pick the "top 4 prerequisite nodes".
func NodesByDescendingDepth(tree model.KnowledgeTree) []model.KnowledgeNode {
	var all []model.KnowledgeNode
	var walk func(model.KnowledgeNode)
	walk = func(n model.KnowledgeNode) {
		all = append(all, n)
		for _, c := range n.Prerequisites {
			walk(c)
		}
	}
	walk(tree.Root)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Depth > all[j].Depth
	})
	return all
}
