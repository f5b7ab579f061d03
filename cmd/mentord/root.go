package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mentord/internal/chat"
	"mentord/internal/common/fsutil"
	"mentord/internal/config"
	"mentord/internal/ollama"
)

// rootFlags holds raw flag values. Zero values leave the config untouched.
type rootFlags struct {
	configPath    string
	envFile       string
	logLevel      string
	logFormat     string
	addr          string
	defaultModel  string
	allowedModels string
	upstreamHost  string
	upstreamPort  int
	timeout       int
	retries       int
	swagger       bool
}

func (f *rootFlags) overrides() config.Config {
	return config.Config{
		Addr:           strings.TrimSpace(f.addr),
		DefaultModel:   strings.TrimSpace(f.defaultModel),
		AllowedModels:  splitCSV(f.allowedModels),
		UpstreamHost:   strings.TrimSpace(f.upstreamHost),
		UpstreamPort:   f.upstreamPort,
		TimeoutSeconds: f.timeout,
		Retries:        f.retries,
		LogLevel:       strings.ToLower(strings.TrimSpace(f.logLevel)),
		LogFormat:      strings.ToLower(strings.TrimSpace(f.logFormat)),
		Swagger:        f.swagger,
	}
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "mentord",
		Short:         "Debugging mentor proxy in front of a local Ollama server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(f.envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error { return runServe(cmd, f) },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Path to config file (.yaml/.yml/.json/.toml)")
	pf.StringVar(&f.envFile, "env-file", ".env", "dotenv file loaded at startup when present")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug|info|warn|error|off (defaults MENTORD_LOG_LEVEL or info)")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format: json|console (defaults MENTORD_LOG_FORMAT or json)")
	pf.StringVar(&f.defaultModel, "default-model", "", "Model used when a request omits one (defaults DEFAULT_MODEL)")
	pf.StringVar(&f.allowedModels, "allowed-models", "", "Comma-separated model allow-list")
	pf.StringVar(&f.upstreamHost, "upstream-host", "", "Ollama host")
	pf.IntVar(&f.upstreamPort, "upstream-port", 0, "Ollama port")
	pf.IntVar(&f.timeout, "timeout", 0, "Per-attempt upstream timeout in seconds")
	pf.IntVar(&f.retries, "retries", 0, "Upstream attempts per chat request")

	serveFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&f.addr, "addr", "", "HTTP listen address (defaults MENTORD_ADDR or 127.0.0.1:8000)")
		c.Flags().BoolVar(&f.swagger, "swagger", false, "Serve Swagger UI under /swagger/")
	}
	serveFlags(root)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP proxy (default)",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return runServe(cmd, f) },
	}
	serveFlags(serveCmd)

	root.AddCommand(serveCmd, newProbeCmd(f), newAskCmd(f))
	return root
}

// loadEnvFile populates the process environment from a dotenv file. Variables
// already set win; a missing file is not an error.
func loadEnvFile(path string) error {
	p, ok, err := fsutil.OptionalFile(path)
	if err != nil || !ok {
		return err
	}
	if err := godotenv.Load(p); err != nil {
		return fmt.Errorf("load %s: %w", p, err)
	}
	return nil
}

// resolveConfig layers compiled defaults, the config file, the environment
// and flags, in that order.
func resolveConfig(f *rootFlags, lookup config.LookupFunc) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		path, err := fsutil.ExpandHome(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		fc, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.Merge(fc)
	}
	cfg = config.ApplyEnv(cfg, lookup)
	cfg = cfg.Merge(f.overrides())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch cfg.LogLevel {
	case "off":
		lvl = zerolog.Disabled
	case "":
	default:
		if l, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			lvl = l
		}
	}
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "mentord").Logger()
}

// setup resolves config and builds the logger and chat service shared by
// every subcommand.
func setup(cmd *cobra.Command, f *rootFlags) (config.Config, zerolog.Logger, *chat.Service, error) {
	cfg, err := resolveConfig(f, os.LookupEnv)
	if err != nil {
		return config.Config{}, zerolog.Nop(), nil, err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())
	if !cfg.DefaultModelAllowed() {
		log.Warn().
			Str("default_model", cfg.DefaultModel).
			Strs("allowed_models", cfg.Models()).
			Msg("default model is not in the allow-list; requests without a model will be rejected")
	}
	client := ollama.NewClient(cfg.UpstreamBaseURL(),
		ollama.WithTimeout(cfg.Timeout()),
		ollama.WithProbeTimeout(cfg.ProbeTimeout()),
	)
	svc := chat.New(client, chat.Config{
		DefaultModel:  cfg.DefaultModel,
		AllowedModels: cfg.Models(),
		Retry: chat.RetryPolicy{
			MaxAttempts: cfg.Retries,
			Backoff:     chat.LinearBackoff(cfg.BackoffStep()),
		},
		Logger: &log,
	})
	return cfg, log, svc, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
