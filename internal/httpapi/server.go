package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"mentord/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error)
	Health(ctx context.Context) types.HealthResponse
	Models() types.ModelsResponse
}

type server struct {
	svc  Service
	opts Options
	log  zerolog.Logger
}

// NewMux builds the router: /api/chat, /health, /api/models, /metrics and,
// when enabled, /swagger/.
func NewMux(svc Service, opts Options) http.Handler {
	opts = opts.withDefaults()
	s := &server{svc: svc, opts: opts, log: opts.logger()}

	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORS.Origins,
		AllowedMethods: opts.CORS.Methods,
		AllowedHeaders: opts.CORS.Headers,
	}))

	r.Post("/api/chat", s.handleChat)
	r.Get("/health", s.handleHealth)
	r.Get("/api/models", s.handleModels)

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	if opts.Swagger {
		MountSwagger(r)
	}
	return r
}

// handleChat godoc
//
//	@Summary	Ask the debugging mentor
//	@Tags		chat
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.ChatRequest	true	"Message and optional model"
//	@Success	200		{object}	types.ChatResponse
//	@Failure	400		{object}	types.ErrorResponse
//	@Failure	415		{object}	types.ErrorResponse
//	@Failure	500		{object}	types.ErrorResponse
//	@Router		/api/chat [post]
func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Oversized bodies land here too; report them as 400 without detail.
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cl := newChatLog(s.log, r, s.opts.LogLevel)
	cl.begin(req.Model)

	// Join server base context with request context so shutdown cancels work too.
	ctx, cancel := joinContexts(s.opts.BaseContext, r.Context())
	defer cancel()
	resp, err := s.svc.Chat(ctx, req)
	if err != nil {
		// Client went away or the server is shutting down: nothing to write.
		if r.Context().Err() != nil || s.opts.BaseContext.Err() != nil {
			cl.end(499, req.Model, 0, err)
			return
		}
		status := statusFor(err)
		writeJSONError(w, status, err.Error())
		cl.end(status, req.Model, 0, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		cl.end(http.StatusOK, resp.ModelUsed, 0, err)
		return
	}
	cl.end(http.StatusOK, resp.ModelUsed, len(resp.Reply), nil)
}

// handleHealth godoc
//
//	@Summary	Proxy and upstream health
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	types.HealthResponse
//	@Router		/health [get]
func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, s.svc.Health(r.Context())); err != nil {
		s.log.Warn().Err(err).Msg("encode health response")
	}
}

// handleModels godoc
//
//	@Summary	Allowed models
//	@Tags		chat
//	@Produce	json
//	@Success	200	{object}	types.ModelsResponse
//	@Router		/api/models [get]
func (s *server) handleModels(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, s.svc.Models()); err != nil {
		s.log.Warn().Err(err).Msg("encode models response")
	}
}
