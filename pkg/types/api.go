package types

// ChatRequest is the payload accepted by POST /api/chat.
type ChatRequest struct {
	// Required user message. Surrounding whitespace is ignored.
	// example: Why does my Go program panic with "assignment to entry in nil map"?
	Message string `json:"message" example:"Why does my Go program panic with \"assignment to entry in nil map\"?"`
	// Optional model identifier. If empty, the server default is used.
	// example: qwen2.5-coder:1.5b
	Model string `json:"model,omitempty" example:"qwen2.5-coder:1.5b"`
}

// ChatResponse is returned by POST /api/chat.
type ChatResponse struct {
	// Generated reply text, trimmed.
	// example: You are writing to a map that was never initialized. Use make(map[string]int) first.
	Reply string `json:"reply" example:"You are writing to a map that was never initialized. Use make(map[string]int) first."`
	// Model that served the request.
	// example: qwen2.5-coder:1.5b
	ModelUsed string `json:"model_used" example:"qwen2.5-coder:1.5b"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// Always "ok" when the proxy itself is serving.
	// example: ok
	Status string `json:"status" example:"ok"`
	// Whether the upstream inference server answered its root path.
	// example: true
	OllamaReachable bool `json:"ollama_reachable" example:"true"`
	// Models this proxy forwards requests for.
	ModelsAvailable []string `json:"models_available"`
}

// ModelsResponse is returned by GET /api/models.
type ModelsResponse struct {
	// Allow-listed model identifiers.
	Models []string `json:"models"`
	// Model used when a chat request omits one.
	// example: qwen2.5-coder:1.5b
	Default string `json:"default" example:"qwen2.5-coder:1.5b"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: Empty message.
	Error string `json:"error" example:"Empty message."`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
