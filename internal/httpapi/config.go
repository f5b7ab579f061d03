package httpapi

import (
	"context"

	"github.com/rs/zerolog"
)

// DefaultMaxBodyBytes caps JSON request bodies when Options leaves it unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// Options configures the HTTP layer. Zero values take defaults.
type Options struct {
	// MaxBodyBytes limits request bodies for JSON endpoints.
	MaxBodyBytes int64
	// LogLevel is the request log level when a request does not override it
	// with ?log= or X-Log-Level.
	LogLevel LogLevel
	// Logger receives chat start/end lines. Nil disables them.
	Logger *zerolog.Logger
	// BaseContext is canceled on shutdown; handlers join it with the request
	// context so in-flight upstream calls stop too.
	BaseContext context.Context
	// CORS overrides the allow-everything default.
	CORS *CORSOptions
	// Swagger mounts the UI and doc.json under /swagger/.
	Swagger bool
}

// CORSOptions lists allowed origins, methods and headers.
type CORSOptions struct {
	Origins []string
	Methods []string
	Headers []string
}

// AllowAllCORS lets any origin call any endpoint with any header.
func AllowAllCORS() CORSOptions {
	return CORSOptions{
		Origins: []string{"*"},
		Methods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		Headers: []string{"*"},
	}
}

func (o Options) withDefaults() Options {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.BaseContext == nil {
		o.BaseContext = context.Background()
	}
	if o.CORS == nil {
		c := AllowAllCORS()
		o.CORS = &c
	}
	return o
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return o.Logger.With().Str("component", "httpapi").Logger()
}
