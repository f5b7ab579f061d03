package chat

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"mentord/internal/ollama"
	"mentord/pkg/types"
)

// Upstream is the inference server as seen by the Service. One Chat call is
// one attempt; retrying is the Service's job.
type Upstream interface {
	Chat(ctx context.Context, payload ollama.ChatPayload) (string, error)
	Ping(ctx context.Context) error
}

// Service validates chat requests, forwards them upstream with the persona
// prompt under the retry policy, and reports upstream health. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	rules    Rules
	persona  string
	upstream Upstream
	retry    RetryPolicy
	log      zerolog.Logger
	newID    func() string
}

// Chat answers one message. Validation failures return before any upstream
// call; upstream failures are retried and surface only once exhausted.
func (s *Service) Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error) {
	msg, model, err := s.rules.Normalize(req.Message, req.Model)
	if err != nil {
		return types.ChatResponse{}, err
	}

	callID := s.newID()
	payload := ollama.NewChatPayload(model, s.persona, msg)
	start := time.Now()

	var reply string
	attempts, err := s.retry.Do(ctx, func(ctx context.Context, attempt int) error {
		out, err := s.upstream.Chat(ctx, payload)
		if err != nil {
			observeAttempt(model, outcomeError)
			s.log.Warn().
				Str("call_id", callID).
				Str("model", model).
				Str("attempt", attemptLabel(attempt, s.retry.MaxAttempts)).
				Err(err).
				Msg("upstream attempt failed")
			return err
		}
		observeAttempt(model, outcomeOK)
		reply = out
		return nil
	})
	if err != nil {
		observeExhausted(model)
		s.log.Error().
			Str("call_id", callID).
			Str("model", model).
			Int("attempts", attempts).
			Dur("dur", time.Since(start)).
			Err(err).
			Msg("upstream unavailable")
		return types.ChatResponse{}, ErrUpstreamUnavailable(attempts, err)
	}

	s.log.Debug().
		Str("call_id", callID).
		Str("model", model).
		Int("attempts", attempts).
		Int("reply_len", len(reply)).
		Dur("dur", time.Since(start)).
		Msg("upstream reply")
	return types.ChatResponse{Reply: reply, ModelUsed: model}, nil
}

// Reachable probes the upstream once. It never fails: every error is
// logged and reported as false.
func (s *Service) Reachable(ctx context.Context) bool {
	if err := s.upstream.Ping(ctx); err != nil {
		s.log.Warn().Err(err).Msg("upstream not reachable")
		return false
	}
	s.log.Info().Msg("upstream reachable")
	return true
}

// Health reports proxy status, upstream reachability and the allow-list.
func (s *Service) Health(ctx context.Context) types.HealthResponse {
	return types.HealthResponse{
		Status:          "ok",
		OllamaReachable: s.Reachable(ctx),
		ModelsAvailable: s.rules.Models(),
	}
}

// Models lists the allow-list and the default model.
func (s *Service) Models() types.ModelsResponse {
	return types.ModelsResponse{Models: s.rules.Models(), Default: s.rules.DefaultModel()}
}

// Retry returns the effective retry policy.
func (s *Service) Retry() RetryPolicy { return s.retry }
