// Package config is conceptreel's cross-cutting configuration: an
// optional YAML file, environment-variable expansion inside it, merged
// over built-in defaults, plus a handful of direct environment overrides
// for the settings spec.md §6 documents as environment-configurable.
// Grounded on the teacher's own pkg/config (Config as the umbrella
// object returned by one Initialize() call, defaults merged with
// mergo.Merge, errors.go's ValidationError/LoadError pair) — generalized
// from the teacher's agent/chain/MCP-server registries to this domain's
// five tunable areas: providers, fallback-chain tuning, queue sizing,
// job retention, and interactive-session port allocation.
package config

import "time"

// Config is the umbrella configuration object for one conceptreel
// process.
type Config struct {
	configPath string

	Providers ProvidersConfig `yaml:"providers"`
	Chain     ChainConfig     `yaml:"fallback_chain"`
	Queue     QueueConfig     `yaml:"queue"`
	Retention RetentionConfig `yaml:"retention"`
	Session   SessionConfig   `yaml:"session"`
}

// ProvidersConfig tunes the LLM provider federation without carrying any
// secret: API keys always come from the provider-specific environment
// variables spec.md §6 documents (ANTHROPIC_API_KEY etc.), never from a
// YAML file that might end up committed to source control.
type ProvidersConfig struct {
	// ModelOverrides maps a provider name (providers.NameAnthropic etc.)
	// to a model string, taking precedence over that provider's
	// <PROVIDER>_MODEL environment variable when set.
	ModelOverrides map[string]string `yaml:"model_overrides"`

	// OllamaBaseURL overrides OLLAMA_BASE_URL when set.
	OllamaBaseURL string `yaml:"ollama_base_url"`
}

// ChainConfig tunes the fallback chain and router: provider attempt
// order, retry accounting, and the COST_OPTIMIZE local-first reordering.
// Duration fields are written as Go duration strings ("1s", "500ms"):
// yaml.v3 parses those into time.Duration and rejects plain integers.
type ChainConfig struct {
	Order        []string      `yaml:"order"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryDelay   time.Duration `yaml:"retry_delay"`
	CostOptimize bool          `yaml:"cost_optimize"`
}

// QueueConfig sizes the event bus's worker pool. WorkerCount of 0 means
// "size to runtime.NumCPU() at wiring time" (spec.md §5's "fixed worker
// pool, size ≈ CPU count").
type QueueConfig struct {
	WorkerCount int `yaml:"worker_count"`
}

// RetentionConfig tunes the job store's TTL sweep.
type RetentionConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// SessionConfig tunes the interactive session manager's WebSocket port
// allocation window.
type SessionConfig struct {
	PortStart int `yaml:"port_start"`
	PortWidth int `yaml:"port_width"`
}

// ConfigPath returns the YAML file path Initialize was given, empty if
// none was configured (defaults-and-env-only).
func (c *Config) ConfigPath() string {
	return c.configPath
}
