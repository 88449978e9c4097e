// Package server hosts sprout trees for live browsers.
//
// The server serves a minimal page shell, then upgrades each browser to a
// WebSocket session. A session owns one livedoc host document and one root
// node built by the application's Root factory; the root is mounted over the
// socket, and browser events are dispatched back into the registered Go
// listeners, whose updates flow out as splice ops.
//
// # Event Processing
//
// When a client sends an event:
//  1. The session read loop decodes the event message
//  2. A trace span is opened and the event is timed
//  3. livedoc routes the event to the bound listener
//  4. The listener typically calls Update on its node, which writes
//     insertBefore/remove/listen ops back over the same connection
//
// Dispatch is strictly sequential per session: one event is handled to
// completion before the next is read, which is what makes the core's
// lock-free single-writer model sound.
//
// # Observability
//
// Prometheus metrics (event counts and durations, active sessions, splice
// ops, websocket errors) are registered per server; an OpenTelemetry span
// wraps every dispatched event. Logging is log/slog.
package server
