// Package command provides CLI command definitions for devserve.
package command

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/codeaj001/devserve/internal/infra/certs"
	"github.com/codeaj001/devserve/internal/infra/confloader"
	"github.com/codeaj001/devserve/internal/infra/shutdown"
	"github.com/codeaj001/devserve/internal/server/config"
	"github.com/codeaj001/devserve/internal/server/httpserver"
	"github.com/codeaj001/devserve/internal/telemetry/logger"
	"github.com/codeaj001/devserve/internal/telemetry/metric"
)

// shutdownTimeout bounds shutdown hook execution. In-flight requests
// past the deadline are abandoned.
const shutdownTimeout = 5 * time.Second

// ServeCommand returns the serve subcommand.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Serve a directory over HTTPS with CORS headers (the default)",
		Flags:  serveFlags(),
		Action: runServe,
	}
}

// runServe is the serve action, also run for bare "devserve".
func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	// The pair must exist before any socket is opened.
	if err := certs.Exists(cfg.TLS.CertFile, cfg.TLS.KeyFile); err != nil {
		return fmt.Errorf("certificates not found (%w)\nrun \"devserve certgen\" first to create a self-signed pair", err)
	}

	watcher, err := certs.NewWatcher(cfg.TLS.CertFile, cfg.TLS.KeyFile, certs.WithLogger(log))
	if err != nil {
		return fmt.Errorf("load certificates: %w", err)
	}
	if cfg.TLS.Watch {
		watcher.StartAsync()
	}

	var registry *metric.Registry
	if cfg.Metrics.Enabled {
		registry = metric.NewRegistry()
	}

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Dir:     cfg.Server.Dir,
		Logger:  log,
		Metrics: registry,
		MaxRPS:  cfg.Server.MaxRPS,
	})

	srv := httpserver.New(cfg.Server.Addr, router, certs.ServerTLSConfig(watcher.GetCertificate))

	shutdownHandler := shutdown.NewHandler(shutdownTimeout)
	shutdownHandler.OnShutdown(func(context.Context) error {
		watcher.Stop()
		return nil
	})
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Debug("shutting down HTTPS server")
		return srv.Shutdown(ctx)
	})

	if registry != nil {
		metricsSrv := startMetrics(cfg.Metrics.Addr, registry, log)
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			return metricsSrv.Shutdown(ctx)
		})
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printBanner(c.App.Writer, cfg)
	log.Info("server started",
		"addr", cfg.Server.Addr,
		"dir", cfg.Server.Dir,
		"cert", cfg.TLS.CertFile,
	)

	waitCh := make(chan error, 1)
	go func() {
		waitCh <- shutdownHandler.Wait()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server: %w", err)
		}
	case err := <-waitCh:
		if err != nil {
			log.Error("shutdown error", "error", err)
		}
	}

	color.New(color.FgGreen).Fprintln(c.App.Writer, "Server stopped")
	return nil
}

// loadConfig assembles the configuration from defaults, an optional
// .env file, the environment, an optional YAML file and flags.
func loadConfig(c *cli.Context) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{confloader.WithDotEnv(".env")}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// Flags win over every other source.
	overrides := map[string]any{}
	if c.IsSet("addr") {
		overrides["server.addr"] = c.String("addr")
	}
	if c.IsSet("dir") {
		overrides["server.dir"] = c.String("dir")
	}
	if c.IsSet("cert") {
		overrides["tls.cert_file"] = c.String("cert")
	}
	if c.IsSet("key") {
		overrides["tls.key_file"] = c.String("key")
	}
	if c.IsSet("no-watch") {
		overrides["tls.watch"] = !c.Bool("no-watch")
	}
	if c.IsSet("max-rps") {
		overrides["server.max_rps"] = c.Int("max-rps")
	}
	if c.IsSet("metrics") {
		overrides["metrics.enabled"] = c.Bool("metrics")
	}
	if c.IsSet("metrics-addr") {
		overrides["metrics.addr"] = c.String("metrics-addr")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger and installs it as the
// package default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// startMetrics serves the Prometheus endpoint on its own listener.
func startMetrics(addr string, registry *metric.Registry, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", registry.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server error", "error", err)
		}
	}()

	return srv
}

// printBanner prints the operator-facing startup notes.
func printBanner(w io.Writer, cfg *config.ServerConfig) {
	fmt.Fprintf(w, "HTTPS server starting on %s\n", serveURL(cfg.Server.Addr))

	yellow := color.New(color.FgYellow)
	yellow.Fprintln(w, "Note: your browser will show a security warning for the self-signed certificate.")
	yellow.Fprintln(w, "Click \"Advanced\" and proceed to continue.")

	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
}

// serveURL renders the address the way an operator will paste it into
// a browser. Wildcard hosts map to localhost.
func serveURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "https://" + addr + "/"
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return fmt.Sprintf("https://%s/", net.JoinHostPort(host, port))
}
