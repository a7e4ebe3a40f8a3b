// Package httpclient provides a small REST client for JSON status APIs,
// with default headers, bounded retry, and structured request/response
// logging.
//
// Retries
//   - Controlled via Builder.WithMaxAttempts (default 3 attempts total).
//   - Retries occur only on transport-level failures (connection errors,
//     DNS failures, timeouts). A response with a non-2xx status is never
//     retried; it fails immediately with a BadStatus error.
//
// Backoff Strategy
//   - Linear backoff based on the configured base delay:
//     sleep = base * failures, i.e. 2s, 4s, 6s, ... with the 2s default.
//   - The timeout applies per attempt, not across the whole retry sequence.
//
// Notes
//   - Request bodies are re-sent by rebuilding the http.Request on each
//     attempt.
//   - Response bodies decode as JSON via Response.JSON; an empty body yields
//     a nil value rather than an error.
package httpclient
