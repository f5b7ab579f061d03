package config

import (
	"net"
	"strconv"
	"time"
)

// Compiled-in defaults. DefaultModel may be overridden by the DEFAULT_MODEL
// environment variable; the rest only through a config file or flags.
const (
	DefaultAddr                = "127.0.0.1:8000"
	DefaultModel               = "qwen2.5-coder:1.5b"
	DefaultUpstreamHost        = "127.0.0.1"
	DefaultUpstreamPort        = 11434
	DefaultTimeoutSeconds      = 300
	DefaultRetries             = 2
	DefaultBackoffStepMS       = 500
	DefaultProbeTimeoutSeconds = 3
	DefaultMaxBodyBytes        = 1 << 20
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "json"
)

// DefaultAllowedModels is the fixed set of models requests may be forwarded to.
var DefaultAllowedModels = []string{
	"qwen2.5-coder:1.5b",
	"deepseek-coder:1.3b",
	"llama3.2:1b",
	"qwen2.5:0.5b",
}

// Config holds runtime parameters for the service.
// Zero values mean "unspecified"; Default() supplies the compiled-in values
// and Merge layers a partial Config on top.
type Config struct {
	Addr                string   `json:"addr" yaml:"addr" toml:"addr"`
	DefaultModel        string   `json:"default_model" yaml:"default_model" toml:"default_model"`
	AllowedModels       []string `json:"allowed_models" yaml:"allowed_models" toml:"allowed_models"`
	UpstreamHost        string   `json:"upstream_host" yaml:"upstream_host" toml:"upstream_host"`
	UpstreamPort        int      `json:"upstream_port" yaml:"upstream_port" toml:"upstream_port"`
	TimeoutSeconds      int      `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
	Retries             int      `json:"retries" yaml:"retries" toml:"retries"`
	BackoffStepMS       int      `json:"backoff_step_ms" yaml:"backoff_step_ms" toml:"backoff_step_ms"`
	ProbeTimeoutSeconds int      `json:"probe_timeout_seconds" yaml:"probe_timeout_seconds" toml:"probe_timeout_seconds"`
	MaxBodyBytes        int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	LogLevel            string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat           string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	Swagger             bool     `json:"swagger" yaml:"swagger" toml:"swagger"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Addr:                DefaultAddr,
		DefaultModel:        DefaultModel,
		AllowedModels:       append([]string(nil), DefaultAllowedModels...),
		UpstreamHost:        DefaultUpstreamHost,
		UpstreamPort:        DefaultUpstreamPort,
		TimeoutSeconds:      DefaultTimeoutSeconds,
		Retries:             DefaultRetries,
		BackoffStepMS:       DefaultBackoffStepMS,
		ProbeTimeoutSeconds: DefaultProbeTimeoutSeconds,
		MaxBodyBytes:        DefaultMaxBodyBytes,
		LogLevel:            DefaultLogLevel,
		LogFormat:           DefaultLogFormat,
	}
}

// Merge returns c with every non-zero field of o applied on top.
// Slices are copied so the result never aliases either input.
func (c Config) Merge(o Config) Config {
	out := c
	out.AllowedModels = append([]string(nil), c.AllowedModels...)
	if o.Addr != "" {
		out.Addr = o.Addr
	}
	if o.DefaultModel != "" {
		out.DefaultModel = o.DefaultModel
	}
	if len(o.AllowedModels) > 0 {
		out.AllowedModels = append([]string(nil), o.AllowedModels...)
	}
	if o.UpstreamHost != "" {
		out.UpstreamHost = o.UpstreamHost
	}
	if o.UpstreamPort != 0 {
		out.UpstreamPort = o.UpstreamPort
	}
	if o.TimeoutSeconds != 0 {
		out.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.Retries != 0 {
		out.Retries = o.Retries
	}
	if o.BackoffStepMS != 0 {
		out.BackoffStepMS = o.BackoffStepMS
	}
	if o.ProbeTimeoutSeconds != 0 {
		out.ProbeTimeoutSeconds = o.ProbeTimeoutSeconds
	}
	if o.MaxBodyBytes != 0 {
		out.MaxBodyBytes = o.MaxBodyBytes
	}
	if o.LogLevel != "" {
		out.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		out.LogFormat = o.LogFormat
	}
	if o.Swagger {
		out.Swagger = true
	}
	return out
}

// Models returns a copy of the allow-list.
func (c Config) Models() []string { return append([]string(nil), c.AllowedModels...) }

// IsAllowed reports whether model is in the allow-list.
func (c Config) IsAllowed(model string) bool {
	for _, m := range c.AllowedModels {
		if m == model {
			return true
		}
	}
	return false
}

// UpstreamBaseURL is the root of the inference server, e.g. http://127.0.0.1:11434.
func (c Config) UpstreamBaseURL() string {
	return "http://" + net.JoinHostPort(c.UpstreamHost, strconv.Itoa(c.UpstreamPort))
}

// Timeout is the per-attempt upstream timeout.
func (c Config) Timeout() time.Duration { return time.Duration(c.TimeoutSeconds) * time.Second }

// ProbeTimeout bounds the health probe.
func (c Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}

// BackoffStep is the unit of the linear retry backoff.
func (c Config) BackoffStep() time.Duration {
	return time.Duration(c.BackoffStepMS) * time.Millisecond
}
