// Package httpserver provides the HTTPS static file server for devserve.
//
// The serving surface is deliberately small: every path on the serving
// port resolves through http.FileServer against the document root, and
// a middleware chain decorates each response:
//
//   - CORS: permissive development headers on every response,
//     preflight OPTIONS answered 200 with an empty body
//   - RequestID: ULID per request in X-Request-ID
//   - AccessLog: structured request logging
//   - Metrics: optional Prometheus counters
//   - Throttle: optional per-client rate limit
//   - Recover: panics become 500s
//
// TLS is mandatory; the certificate comes from the tls.Config so a
// reload watcher can swap it at runtime.
package httpserver
