package chat

import "strings"

const emptyMessage = "Empty message."

// Rules holds the request constraints: a default model and the allow-list.
// A Rules value is read-only once built.
type Rules struct {
	defaultModel string
	allowed      map[string]struct{}
	ordered      []string
}

// NewRules builds Rules from a default model and an allow-list.
func NewRules(defaultModel string, allowed []string) Rules {
	r := Rules{
		defaultModel: strings.TrimSpace(defaultModel),
		allowed:      make(map[string]struct{}, len(allowed)),
	}
	for _, m := range allowed {
		if _, dup := r.allowed[m]; dup {
			continue
		}
		r.allowed[m] = struct{}{}
		r.ordered = append(r.ordered, m)
	}
	return r
}

// Normalize trims message and model, substitutes the default model when
// none is given, and enforces the allow-list. It performs no I/O.
func (r Rules) Normalize(message, model string) (string, string, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return "", "", ErrInvalidRequest(emptyMessage)
	}
	m := strings.TrimSpace(model)
	if m == "" {
		m = r.defaultModel
	}
	if !r.Allowed(m) {
		return "", "", ErrModelNotAllowed(m)
	}
	return msg, m, nil
}

// Allowed reports whether model is allow-listed.
func (r Rules) Allowed(model string) bool {
	_, ok := r.allowed[model]
	return ok
}

// DefaultModel returns the model used when a request omits one.
func (r Rules) DefaultModel() string { return r.defaultModel }

// Models returns the allow-list in configured order.
func (r Rules) Models() []string { return append([]string(nil), r.ordered...) }
