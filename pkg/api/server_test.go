package api

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptreel/conceptreel/pkg/eventbus"
	"github.com/conceptreel/conceptreel/pkg/jobstore"
	"github.com/conceptreel/conceptreel/pkg/mathlib"
	"github.com/conceptreel/conceptreel/pkg/model"
	"github.com/conceptreel/conceptreel/pkg/narrative"
	"github.com/conceptreel/conceptreel/pkg/pipeline"
	"github.com/conceptreel/conceptreel/pkg/providers"
	"github.com/conceptreel/conceptreel/pkg/visual"
)

func init() { gin.SetMode(gin.TestMode) }

// alwaysFailProvider is available (so the gateway's submission-time check
// passes) but every generation call fails, forcing the code generator
// down to the built-in template catalogue — matching spec.md §8 scenario
// 3 (Mobius strip, providers failing, template present -> completed).
type alwaysFailProvider struct{ name string }

func (p *alwaysFailProvider) Name() string        { return p.name }
func (p *alwaysFailProvider) DisplayName() string { return p.name }
func (p *alwaysFailProvider) Capabilities() []providers.Capability {
	return []providers.Capability{providers.CapabilityCodeGeneration, providers.CapabilityIntentAnalysis, providers.CapabilityMathEnrichment}
}
func (p *alwaysFailProvider) IsAvailable() bool { return true }
func (p *alwaysFailProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	return "", assertAnError
}
func (p *alwaysFailProvider) AnalyzeIntent(ctx context.Context, text string) (providers.IntentResult, error) {
	return providers.IntentResult{}, assertAnError
}
func (p *alwaysFailProvider) EnrichMath(ctx context.Context, concept string) (providers.MathSuggestions, error) {
	return providers.MathSuggestions{}, assertAnError
}
func (p *alwaysFailProvider) HealthCheck(ctx context.Context) error { return assertAnError }

var assertAnError = context.DeadlineExceeded

// fakeRenderer stands in for pkg/renderer in these HTTP-layer tests: the
// gateway only needs the pipeline to reach a terminal event, not an
// actual child-process render.
type fakeRenderer struct{}

func (fakeRenderer) Render(ctx context.Context, jc *pipeline.JobContext) error {
	jc.VideoURL = "/media/videos/scene/480p15/MainScene.mp4"
	return nil
}

func newTestServer(t *testing.T, reg *providers.Registry) (*Server, *jobstore.Store) {
	t.Helper()
	chain := providers.NewFallbackChain(reg, nil, 1, time.Millisecond)
	bus := eventbus.New(2)
	t.Cleanup(bus.Close)
	store := jobstore.New(time.Hour, time.Hour)

	stages := []pipeline.Stage{
		pipeline.NewConceptAnalyzer(chain),
		pipeline.NewPrerequisiteExplorer(chain),
		pipeline.NewMathEnricherStage(mathlib.NewEnricher(chain)),
		pipeline.NewVisualDesignerStage(visual.NewDesigner()),
		pipeline.NewNarrativeComposerStage(narrative.NewComposer(rand.New(rand.NewSource(1)))),
		pipeline.NewCodeGenerator(chain),
	}
	sink := pipeline.NewResultSink(store)
	p := pipeline.New(bus, stages, fakeRenderer{}, sink)

	return NewServer(p, store, reg, nil, t.TempDir()), store
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	reg := providers.NewRegistry(&alwaysFailProvider{name: providers.NameAnthropic})
	srv, _ := newTestServer(t, reg)

	body := `{"concept":"","style":"minimal","quality":"low"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateReturns503WhenNoProviderAvailable(t *testing.T) {
	reg := providers.NewRegistry()
	srv, _ := newTestServer(t, reg)

	body := `{"concept":"derivative","style":"minimal","quality":"low","useNLU":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGenerateCompletesViaTemplateFallback(t *testing.T) {
	reg := providers.NewRegistry(
		&alwaysFailProvider{name: providers.NameAnthropic},
		&alwaysFailProvider{name: providers.NameOpenAI},
		&alwaysFailProvider{name: providers.NameGemini},
		&alwaysFailProvider{name: providers.NameOllama},
	)
	srv, store := newTestServer(t, reg)

	body := `{"concept":"mobius strip","style":"3blue1brown","quality":"high","useNLU":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var genResp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genResp))
	require.NotEmpty(t, genResp.JobID)

	var result model.JobResult
	require.Eventually(t, func() bool {
		r, ok := store.Get(genResp.JobID)
		if !ok {
			return false
		}
		result = r
		return result.Status != model.JobStatusGenerating
	}, 2*time.Second, 5*time.Millisecond)

	require.Equal(t, model.JobStatusCompleted, result.Status)
	require.NotNil(t, result.Completed)
	assert.False(t, result.Completed.UsedAI)
	assert.Contains(t, result.Completed.Code, "MainScene")
	assert.Equal(t, "/media/videos/scene/480p15/MainScene.mp4", result.Completed.VideoURL)

	getReq := httptest.NewRequest(http.MethodGet, "/api/jobs/"+genResp.JobID, nil)
	getRec := httptest.NewRecorder()
	srv.router.ServeHTTP(getRec, getReq)
	assert.Equal(t, http.StatusOK, getRec.Code)
	assert.Contains(t, getRec.Body.String(), `"status":"completed"`)
}

func TestGetUnknownJobReportsGenerating(t *testing.T) {
	reg := providers.NewRegistry(&alwaysFailProvider{name: providers.NameAnthropic})
	srv, _ := newTestServer(t, reg)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/does-not-exist", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"generating"`)
}
