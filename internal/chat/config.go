package chat

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config encapsulates all tunables for Service construction.
type Config struct {
	DefaultModel  string
	AllowedModels []string
	// Persona is the system prompt; empty means DebugMentorPersona.
	Persona string
	// Retry wraps each upstream chat call. Zero fields take package defaults.
	Retry RetryPolicy
	// Logger receives attempt failures and probe results. Nil disables logging.
	Logger *zerolog.Logger
}

// New constructs a Service over up, applying defaults for unset fields.
func New(up Upstream, cfg Config) *Service {
	s := &Service{
		rules:    NewRules(cfg.DefaultModel, cfg.AllowedModels),
		persona:  cfg.Persona,
		upstream: up,
		retry:    cfg.Retry.withDefaults(),
		log:      zerolog.Nop(),
		newID:    uuid.NewString,
	}
	if s.persona == "" {
		s.persona = DebugMentorPersona
	}
	if cfg.Logger != nil {
		s.log = cfg.Logger.With().Str("component", "chat").Logger()
	}
	return s
}
