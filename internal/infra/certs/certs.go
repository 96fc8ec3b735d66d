// Package certs provides TLS certificate management for devserve.
package certs

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is returned when the certificate or key file is missing.
var ErrNotFound = errors.New("certs: certificate or key not found")

// Exists checks that both the certificate and the key file are present.
// It returns an error wrapping ErrNotFound naming the first missing file.
func Exists(certFile, keyFile string) error {
	for _, path := range []string{certFile, keyFile} {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return fmt.Errorf("certs: stat %s: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
		}
	}
	return nil
}

// Load loads a certificate/key pair from PEM files.
func Load(certFile, keyFile string) (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("certs: load key pair: %w", err)
	}
	return cert, nil
}

// ServerTLSConfig builds a server-side TLS config around a certificate
// source. TLS 1.2 is the floor.
func ServerTLSConfig(getCert func(*tls.ClientHelloInfo) (*tls.Certificate, error)) *tls.Config {
	return &tls.Config{
		MinVersion:     tls.VersionTLS12,
		GetCertificate: getCert,
	}
}
