// Package metric provides Prometheus metrics for devserve.
//
// It exposes request counts, latencies and response sizes in
// Prometheus exposition format. The metrics endpoint lives on its
// own listener, separate from the serving port, so the static file
// contract of the main server is unaffected.
package metric
