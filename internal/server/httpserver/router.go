// Package httpserver provides the HTTPS static file server for devserve.
package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codeaj001/devserve/internal/telemetry/logger"
	"github.com/codeaj001/devserve/internal/telemetry/metric"
)

// RouterConfig holds configuration for the request router.
type RouterConfig struct {
	// Dir is the document root.
	Dir string

	// Logger receives the access log.
	Logger logger.Logger

	// Metrics receives request metrics. Nil disables recording.
	Metrics *metric.Registry

	// MaxRPS throttles each client. Zero disables the throttle.
	MaxRPS int
}

// Static returns the file-serving handler rooted at dir: directory
// listings, MIME inference and status codes are http.FileServer's.
func Static(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}

// NewRouter builds the handler chain around the static file server.
//
// Order matters: CORS sits after the observers and before the
// throttle, so preflight OPTIONS requests are always answered 200
// regardless of throttling, and a throttled response still carries
// the CORS headers.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	r := mux.NewRouter()

	r.Use(mux.MiddlewareFunc(Recover(log)))
	r.Use(mux.MiddlewareFunc(RequestID()))
	r.Use(mux.MiddlewareFunc(AccessLog(log)))
	if cfg.Metrics != nil {
		r.Use(mux.MiddlewareFunc(Metrics(cfg.Metrics)))
	}
	r.Use(mux.MiddlewareFunc(CORS()))
	if cfg.MaxRPS > 0 {
		r.Use(mux.MiddlewareFunc(Throttle(cfg.MaxRPS)))
	}

	// Everything is static content. No other routes exist on the
	// serving port.
	r.PathPrefix("/").Handler(Static(cfg.Dir))

	return r
}
