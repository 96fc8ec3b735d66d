// Package config defines the devserve configuration structure.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyTLS(&cfg.TLS); err != nil {
		return err
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		return errors.New("metrics.addr is required when metrics are enabled")
	}
	return nil
}

func verifyServer(cfg *ServerSection) error {
	if cfg.Addr == "" {
		return errors.New("server.addr is required")
	}

	if cfg.Dir == "" {
		return errors.New("server.dir is required")
	}
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return fmt.Errorf("server.dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("server.dir: %s is not a directory", cfg.Dir)
	}

	if cfg.MaxRPS < 0 {
		return errors.New("server.max_rps must not be negative")
	}
	return nil
}

func verifyTLS(cfg *TLSSection) error {
	if cfg.CertFile == "" || cfg.KeyFile == "" {
		return errors.New("tls.cert_file and tls.key_file are required")
	}
	return nil
}
