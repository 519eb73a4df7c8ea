package config

import "fmt"

// validate checks the fully-resolved Config for out-of-range values,
// following the teacher's validator.go's "run every check, collect the
// first failure" shape — simplified to one error return since this
// config has no cross-referencing registries to validate.
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 0 {
		return NewValidationError("queue", "worker_count", fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if cfg.Chain.MaxRetries <= 0 {
		return NewValidationError("fallback_chain", "max_retries", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Chain.RetryDelay < 0 {
		return NewValidationError("fallback_chain", "retry_delay", fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if cfg.Retention.TTL <= 0 {
		return NewValidationError("retention", "ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Retention.SweepInterval <= 0 {
		return NewValidationError("retention", "sweep_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Session.PortWidth <= 0 {
		return NewValidationError("session", "port_width", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Session.PortStart <= 0 {
		return NewValidationError("session", "port_start", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
