package config

import (
	"time"

	"github.com/conceptreel/conceptreel/pkg/jobstore"
	"github.com/conceptreel/conceptreel/pkg/providers"
	"github.com/conceptreel/conceptreel/pkg/session"
)

// DefaultConfig returns the built-in defaults every layer (YAML file,
// then environment overrides) is merged on top of. Reuses each owning
// package's own documented defaults rather than duplicating the magic
// numbers here.
func DefaultConfig() *Config {
	return &Config{
		Providers: ProvidersConfig{
			ModelOverrides: map[string]string{},
		},
		Chain: ChainConfig{
			Order:      append([]string(nil), providers.DefaultOrder...),
			MaxRetries: 3,
			RetryDelay: time.Second,
		},
		Queue: QueueConfig{
			WorkerCount: 0,
		},
		Retention: RetentionConfig{
			TTL:           jobstore.DefaultTTL,
			SweepInterval: jobstore.DefaultSweepInterval,
		},
		Session: SessionConfig{
			PortStart: session.DefaultPortWindowStart,
			PortWidth: session.DefaultPortWindowWidth,
		},
	}
}
