package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptreel/conceptreel/pkg/model"
)

func TestBuildRespectsMaxDepth(t *testing.T) {
	explore := func(ctx context.Context, concept string) ([]Suggestion, error) {
		return []Suggestion{
			{Concept: concept + " child A", FundamentalScore: 0.4, ExplanationTime: 10},
			{Concept: concept + " child B", FundamentalScore: 0.8, ExplanationTime: 200},
		}, nil
	}

	tree := Build(context.Background(), "derivatives", explore)
	assert.LessOrEqual(t, tree.MaxDepth, model.MaxDepth)

	var walk func(model.KnowledgeNode, int)
	walk = func(n model.KnowledgeNode, expectedDepth int) {
		assert.Equal(t, expectedDepth, n.Depth)
		for _, c := range n.Prerequisites {
			walk(c, expectedDepth+1)
		}
	}
	walk(tree.Root, 0)

	assert.Equal(t, model.MaxDepth, tree.MaxDepth, "fan-out tree should hit the bound")
}

func TestBuildClampsOutOfRangeValues(t *testing.T) {
	explore := func(ctx context.Context, concept string) ([]Suggestion, error) {
		return []Suggestion{
			{Concept: "edge case", FundamentalScore: 5.0, ExplanationTime: 99999},
		}, nil
	}

	tree := Build(context.Background(), "topic", explore)
	require.Len(t, tree.Root.Prerequisites, 1)
	child := tree.Root.Prerequisites[0]
	assert.Equal(t, 1.0, child.FundamentalScore)
	assert.Equal(t, maxExplanation, child.ExplanationTime)
}

func TestBuildDeduplicatesCaseInsensitively(t *testing.T) {
	calls := 0
	explore := func(ctx context.Context, concept string) ([]Suggestion, error) {
		calls++
		if calls > 1 {
			return nil, nil
		}
		return []Suggestion{
			{Concept: "Limits"},
			{Concept: "limits"},
			{Concept: "LIMITS"},
		}, nil
	}

	tree := Build(context.Background(), "derivatives", explore)
	assert.Len(t, tree.Root.Prerequisites, 1, "case-insensitive duplicates must collapse to one child")
}

func TestBuildFallsBackToRuleTableOnProviderFailure(t *testing.T) {
	explore := func(ctx context.Context, concept string) ([]Suggestion, error) {
		return nil, errors.New("provider timeout")
	}

	tree := Build(context.Background(), "derivative", explore)

	var names []string
	for _, c := range tree.Root.Prerequisites {
		names = append(names, strings.ToLower(c.Concept))
	}
	assert.ElementsMatch(t, []string{"limits", "functions", "slopes"}, names)
	assert.Len(t, tree.LearningPath, tree.TotalNodes)
}

func TestBuildWithNilExploreUsesRuleFallback(t *testing.T) {
	tree := Build(context.Background(), "derivative", nil)
	require.Len(t, tree.Root.Prerequisites, 3)

	var names []string
	for _, c := range tree.Root.Prerequisites {
		names = append(names, strings.ToLower(c.Concept))
	}
	assert.ElementsMatch(t, []string{"limits", "functions", "slopes"}, names)
	assert.Equal(t, tree.TotalNodes, len(tree.LearningPath))
}

func TestPostOrderLearningPathListsChildrenBeforeParent(t *testing.T) {
	explore := func(ctx context.Context, concept string) ([]Suggestion, error) {
		if concept == "root" {
			return []Suggestion{{Concept: "child"}}, nil
		}
		return nil, nil
	}

	tree := Build(context.Background(), "root", explore)
	require.Len(t, tree.LearningPath, 2)
	assert.Equal(t, tree.Root.Prerequisites[0].ID, tree.LearningPath[0])
	assert.Equal(t, tree.Root.ID, tree.LearningPath[1])
}

func TestNodesByDescendingDepthOrdersDeepestFirst(t *testing.T) {
	explore := func(ctx context.Context, concept string) ([]Suggestion, error) {
		if concept == "root" {
			return []Suggestion{{Concept: "mid"}}, nil
		}
		if concept == "mid" {
			return []Suggestion{{Concept: "deep"}}, nil
		}
		return nil, nil
	}

	tree := Build(context.Background(), "root", explore)
	ordered := NodesByDescendingDepth(tree)
	require.Len(t, ordered, 3)
	assert.Equal(t, "deep", ordered[0].Concept)
	assert.Equal(t, "root", ordered[2].Concept)
}
