package config

import (
	"strconv"
	"strings"
)

// Environment variables read at startup.
const (
	EnvDefaultModel = "DEFAULT_MODEL"
	EnvAddr         = "MENTORD_ADDR"
	EnvLogLevel     = "MENTORD_LOG_LEVEL"
	EnvLogFormat    = "MENTORD_LOG_FORMAT"
	EnvMaxBodyBytes = "MENTORD_MAX_BODY_BYTES"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv returns c with environment overrides applied.
// Empty and unparsable values are ignored.
func ApplyEnv(c Config, lookup LookupFunc) Config {
	var o Config
	o.DefaultModel = envStr(lookup, EnvDefaultModel)
	o.Addr = envStr(lookup, EnvAddr)
	o.LogLevel = strings.ToLower(envStr(lookup, EnvLogLevel))
	o.LogFormat = strings.ToLower(envStr(lookup, EnvLogFormat))
	if v := envStr(lookup, EnvMaxBodyBytes); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			o.MaxBodyBytes = n
		}
	}
	return c.Merge(o)
}

func envStr(lookup LookupFunc, key string) string {
	if lookup == nil {
		return ""
	}
	v, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
