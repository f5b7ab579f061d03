package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks structural constraints. It does not require the default
// model to be allow-listed; see DefaultModelAllowed.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if len(c.AllowedModels) == 0 {
		errs = append(errs, errors.New("allowed_models must not be empty"))
	}
	for i, m := range c.AllowedModels {
		if strings.TrimSpace(m) == "" {
			errs = append(errs, fmt.Errorf("allowed_models[%d] is empty", i))
		}
	}
	if strings.TrimSpace(c.UpstreamHost) == "" {
		errs = append(errs, errors.New("upstream_host is required"))
	}
	if c.UpstreamPort <= 0 || c.UpstreamPort > 65535 {
		errs = append(errs, fmt.Errorf("upstream_port out of range: %d", c.UpstreamPort))
	}
	if c.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("timeout_seconds must be positive: %d", c.TimeoutSeconds))
	}
	if c.Retries < 1 {
		errs = append(errs, fmt.Errorf("retries must be at least 1: %d", c.Retries))
	}
	if c.BackoffStepMS < 0 {
		errs = append(errs, fmt.Errorf("backoff_step_ms must not be negative: %d", c.BackoffStepMS))
	}
	if c.ProbeTimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("probe_timeout_seconds must be positive: %d", c.ProbeTimeoutSeconds))
	}
	switch c.LogFormat {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unsupported log_format: %s", c.LogFormat))
	}
	return errors.Join(errs...)
}

// DefaultModelAllowed reports whether requests that omit a model can succeed.
func (c Config) DefaultModelAllowed() bool { return c.IsAllowed(c.DefaultModel) }
