// conceptreel turns a natural-language concept into a rendered
// mathematical animation: it hosts the job gateway, the event-driven
// pipeline, the LLM provider federation, and renderer dispatch in one
// process.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/conceptreel/conceptreel/pkg/api"
	"github.com/conceptreel/conceptreel/pkg/config"
	"github.com/conceptreel/conceptreel/pkg/eventbus"
	"github.com/conceptreel/conceptreel/pkg/jobstore"
	"github.com/conceptreel/conceptreel/pkg/mathlib"
	"github.com/conceptreel/conceptreel/pkg/narrative"
	"github.com/conceptreel/conceptreel/pkg/pipeline"
	"github.com/conceptreel/conceptreel/pkg/providers"
	"github.com/conceptreel/conceptreel/pkg/renderer"
	"github.com/conceptreel/conceptreel/pkg/session"
	"github.com/conceptreel/conceptreel/pkg/version"
	"github.com/conceptreel/conceptreel/pkg/visual"
)

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func main() {
	os.Exit(run())
}

func run() int {
	port := flag.String("port", getEnv("HTTP_PORT", "8080"), "HTTP port the job gateway listens on")
	mediaDir := flag.String("media-dir", getEnv("MEDIA_DIR", "./media"), "directory rendered video output is discovered under and served from")
	tempDir := flag.String("temp-dir", getEnv("TEMP_DIR", "./tmp"), "directory scene files are written to before a render")
	rendererPreference := flag.String("renderer-preference", getEnv("RENDERER_PREFERENCE", ""), "preferred renderer (\"standard\" or \"gl\"); empty lets selection decide")
	flag.Parse()

	cfg, err := config.Initialize(getEnv("CONFIG_FILE", ""))
	if err != nil {
		slog.Error("loading configuration", "error", err)
		return 1
	}

	if err := os.MkdirAll(*mediaDir, 0o755); err != nil {
		slog.Error("creating media dir", "error", err)
		return 1
	}
	if err := os.MkdirAll(*tempDir, 0o755); err != nil {
		slog.Error("creating temp dir", "error", err)
		return 1
	}

	slog.Info("starting conceptreel", "version", version.Full(), "port", *port)

	registry := buildProviderRegistry(cfg)
	router := providers.NewRouter(registry)
	if cfg.Chain.CostOptimize {
		router.PreferLocalFirst()
		slog.Info("cost optimization enabled: preferring local provider")
	}
	chain := providers.NewFallbackChain(registry, cfg.Chain.Order, cfg.Chain.MaxRetries, cfg.Chain.RetryDelay).WithRouter(router)

	standardRenderer := renderer.NewStandardRenderer()
	glRenderer := renderer.NewGLRenderer()
	if !standardRenderer.IsAvailable() && !glRenderer.IsAvailable() {
		slog.Error("no renderer available in this environment")
		return 2
	}

	workerCount := cfg.Queue.WorkerCount
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	bus := eventbus.New(workerCount)
	store := jobstore.New(cfg.Retention.TTL, cfg.Retention.SweepInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.Start(ctx)

	stages := []pipeline.Stage{
		pipeline.NewConceptAnalyzer(chain),
		pipeline.NewPrerequisiteExplorer(chain),
		pipeline.NewMathEnricherStage(mathlib.NewEnricher(chain)),
		pipeline.NewVisualDesignerStage(visual.NewDesigner()),
		pipeline.NewNarrativeComposerStage(narrative.NewComposer(rand.New(rand.NewSource(time.Now().UnixNano())))),
		pipeline.NewCodeGenerator(chain),
	}

	dispatch := pipeline.NewRenderDispatch(standardRenderer, glRenderer, *tempDir, *mediaDir, renderer.Criteria{
		PreferredRenderer: *rendererPreference,
	})
	sink := pipeline.NewResultSink(store)
	pl := pipeline.New(bus, stages, dispatch, sink)

	sessions := session.NewManager(glRenderer, *tempDir, cfg.Session.PortStart, cfg.Session.PortWidth)

	srv := api.NewServer(pl, store, registry, sessions, *mediaDir)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("job gateway listening", "addr", ":"+*port)
		if err := srv.Start(":" + *port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		slog.Error("job gateway failed", "error", err)
		return 1
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("job gateway shutdown", "error", err)
	}

	sessions.ShutdownAll()
	cancel() // propagate cancellation to any in-flight render child processes
	store.Stop()
	bus.Close()

	slog.Info("conceptreel stopped cleanly")
	return 0
}

// buildProviderRegistry wires the four provider adapters from environment
// credentials, per spec.md §6 ("Provider keys (one per provider),
// <PROVIDER>_MODEL overrides"). A missing API key still constructs the
// adapter — IsAvailable() just reports false — so the registry always
// has all four names, matching the router's "walk all providers" fallback.
// Model names and the Ollama base URL go through cfg.ResolveModel /
// cfg.ResolveOllamaBaseURL first, so a config-file override wins over the
// environment variable, which wins over the built-in default.
func buildProviderRegistry(cfg *config.Config) *providers.Registry {
	return providers.NewRegistry(
		providers.NewAnthropicProvider(os.Getenv("ANTHROPIC_API_KEY"), cfg.ResolveModel(providers.NameAnthropic, "ANTHROPIC_MODEL", "")),
		providers.NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"), cfg.ResolveModel(providers.NameOpenAI, "OPENAI_MODEL", "")),
		providers.NewGeminiProvider(os.Getenv("GEMINI_API_KEY"), cfg.ResolveModel(providers.NameGemini, "GEMINI_MODEL", "")),
		providers.NewOllamaProvider(cfg.ResolveOllamaBaseURL("http://localhost:11434"), cfg.ResolveModel(providers.NameOllama, "OLLAMA_MODEL", "llama3")),
	)
}
