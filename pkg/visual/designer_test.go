package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptreel/conceptreel/pkg/model"
)

func sampleTree(nodeCount int) model.KnowledgeTree {
	tree := model.KnowledgeTree{Root: model.KnowledgeNode{ID: "root", Concept: "root"}}
	tree.TotalNodes = nodeCount
	for i := 0; i < nodeCount; i++ {
		tree.LearningPath = append(tree.LearningPath, "node")
	}
	return tree
}

func TestDesignProducesIncreasingBeatTimes(t *testing.T) {
	d := NewDesigner()
	design := d.Design("derivatives", sampleTree(3), model.MathEnrichment{}, model.StyleThreeBlueOneBrown)

	require.NotEmpty(t, design.TimingBeats)
	for i := 1; i < len(design.TimingBeats); i++ {
		assert.GreaterOrEqual(t, design.TimingBeats[i].Time, design.TimingBeats[i-1].Time)
	}
	last := design.TimingBeats[len(design.TimingBeats)-1]
	assert.Equal(t, last.Time+last.Duration, design.TotalDuration)
}

func TestDesignLastExplanationBeatIsClimax(t *testing.T) {
	d := NewDesigner()
	design := d.Design("concept", sampleTree(2), model.MathEnrichment{}, model.StyleDark)

	var sawClimax bool
	for _, b := range design.TimingBeats {
		if b.Type == model.BeatClimax {
			sawClimax = true
		}
	}
	assert.True(t, sawClimax)
}

func TestDesignOmitsSetupForSingleNode(t *testing.T) {
	d := NewDesigner()
	design := d.Design("concept", sampleTree(1), model.MathEnrichment{}, model.StyleMinimal)

	for _, b := range design.TimingBeats {
		assert.NotEqual(t, model.BeatSetup, b.Type)
	}
}

func TestDesignClampsZoomToStyleMax(t *testing.T) {
	d := NewDesigner()
	design := d.Design("concept", sampleTree(1), model.MathEnrichment{}, model.StyleMinimal)

	for _, kf := range design.CameraKeyframes {
		assert.LessOrEqual(t, kf.Zoom, 1.5) // minimal preset maxZoom
	}
}

func TestDesignZeroesRotationWhenStyleForbidsIt(t *testing.T) {
	d := NewDesigner()
	design := d.Design("concept", sampleTree(1), model.MathEnrichment{}, model.StyleMinimal)

	for _, kf := range design.CameraKeyframes {
		assert.Zero(t, kf.Rotation)
	}
}

func TestDesignDetectsIs3DFromConceptKeyword(t *testing.T) {
	d := NewDesigner()
	design := d.Design("rotating torus knot", sampleTree(1), model.MathEnrichment{}, model.StyleThreeBlueOneBrown)
	assert.True(t, design.Is3D)
}

func TestDesignSkipsCameraKeyframeForTransitionBeats(t *testing.T) {
	d := NewDesigner()
	design := d.Design("concept", sampleTree(3), model.MathEnrichment{}, model.StyleVibrant)

	var transitionCount, nonTransitionCount int
	for _, b := range design.TimingBeats {
		if b.Type == model.BeatTransition {
			transitionCount++
			assert.Nil(t, b.Camera)
		} else {
			nonTransitionCount++
			assert.NotNil(t, b.Camera)
		}
	}
	assert.Greater(t, transitionCount, 0)
	assert.Len(t, design.CameraKeyframes, nonTransitionCount)
}
