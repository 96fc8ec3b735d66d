// Package httpserver provides the HTTPS static file server for devserve.
package httpserver

import (
	"context"
	"crypto/tls"
	"net/http"
)

// Server represents the HTTPS server.
type Server struct {
	httpServer *http.Server
}

// New creates a new HTTPS server. The TLS config must carry a
// certificate source (GetCertificate or Certificates).
func New(addr string, handler http.Handler, tlsConfig *tls.Config) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:      addr,
			Handler:   handler,
			TLSConfig: tlsConfig,
		},
	}
}

// ListenAndServe starts the HTTPS server. The certificate comes from
// the TLS config, so no file paths are passed here.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServeTLS("", "")
}

// Shutdown stops accepting new connections and waits for in-flight
// requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
