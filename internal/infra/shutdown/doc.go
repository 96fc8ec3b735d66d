// Package shutdown provides interrupt-driven shutdown for devserve.
//
// The serve command registers cleanup callbacks (HTTP listeners, the
// certificate watcher) and blocks in Wait() until the operator sends
// SIGINT or SIGTERM. Hooks run in reverse registration order under a
// bounded timeout; in-flight requests past the deadline are abandoned,
// which is acceptable for a development tool.
package shutdown
