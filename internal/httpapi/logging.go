package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

// ParseLevel maps a level name to a LogLevel. Unknown names mean info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return LevelOff
	case "error", "warn":
		return LevelError
	case "info":
		return LevelInfo
	case "debug", "trace":
		return LevelDebug
	default:
		return LevelInfo
	}
}

func requestLogLevel(r *http.Request, def LogLevel) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return ParseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return ParseLevel(v)
	}
	return def
}

// chatLog emits the start/end lines of one /api/chat request.
type chatLog struct {
	log   zerolog.Logger
	lvl   LogLevel
	rid   string
	start time.Time
}

func newChatLog(l zerolog.Logger, r *http.Request, def LogLevel) *chatLog {
	return &chatLog{
		log:   l,
		lvl:   requestLogLevel(r, def),
		rid:   middleware.GetReqID(r.Context()),
		start: time.Now(),
	}
}

func (c *chatLog) begin(model string) {
	if c.lvl < LevelInfo {
		return
	}
	z := c.log.Info().Str("path", "/api/chat").Str("model", model)
	if c.rid != "" {
		z = z.Str("request_id", c.rid)
	}
	z.Msg("chat start")
}

func (c *chatLog) end(status int, model string, replyLen int, err error) {
	if c.lvl < LevelInfo && (c.lvl < LevelError || err == nil) {
		return
	}
	z := c.log.Info()
	if status >= http.StatusInternalServerError {
		z = c.log.Error()
	}
	z = z.Int("status", status).Dur("dur", time.Since(c.start)).Str("model", model)
	if c.rid != "" {
		z = z.Str("request_id", c.rid)
	}
	if c.lvl >= LevelDebug && err == nil {
		z = z.Int("reply_len", replyLen)
	}
	if err != nil {
		z = z.Err(err)
	}
	z.Msg("chat end")
}
