// Package chat turns a user message into an upstream chat call. It is
// structured into small files by concern:
//
//   - service.go: Service, the Upstream interface, Chat/Health/Models.
//   - config.go: Config and New; unset fields take package defaults.
//   - validate.go: Rules.Normalize (trim, default model, allow-list).
//   - retry.go: RetryPolicy with linear backoff and injectable sleep.
//   - errors.go: error types and helpers (IsInvalidRequest, IsModelNotAllowed,
//     IsUpstreamUnavailable). Each carries an HTTP status via StatusCode().
//   - persona.go: the default system prompt.
//   - metrics.go: Prometheus counters for upstream attempts.
package chat
