// Package certs provides TLS certificate management for devserve.
package certs

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

// ErrExists is returned when Generate would overwrite an existing pair.
var ErrExists = errors.New("certs: certificate or key already exists")

// GenerateOptions controls self-signed certificate generation.
type GenerateOptions struct {
	// CertFile is the output path for the PEM certificate.
	CertFile string

	// KeyFile is the output path for the PEM private key.
	KeyFile string

	// Hosts are the DNS names and IP addresses the certificate is
	// valid for. Defaults to localhost, 127.0.0.1 and ::1.
	Hosts []string

	// ValidFor is the certificate lifetime. Defaults to one year.
	ValidFor time.Duration

	// Force overwrites an existing certificate/key pair.
	Force bool
}

// Generate writes a self-signed ECDSA P-256 certificate/key pair for
// local development. The key file is written with mode 0600.
func Generate(opts GenerateOptions) error {
	if opts.CertFile == "" || opts.KeyFile == "" {
		return errors.New("certs: cert and key paths are required")
	}
	if len(opts.Hosts) == 0 {
		opts.Hosts = []string{"localhost", "127.0.0.1", "::1"}
	}
	if opts.ValidFor <= 0 {
		opts.ValidFor = 365 * 24 * time.Hour
	}

	if !opts.Force {
		if Exists(opts.CertFile, opts.KeyFile) == nil {
			return fmt.Errorf("%w: %s", ErrExists, opts.CertFile)
		}
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("certs: generate key: %w", err)
	}

	serialLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serialNumber, err := rand.Int(rand.Reader, serialLimit)
	if err != nil {
		return fmt.Errorf("certs: generate serial: %w", err)
	}

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{"devserve"},
			CommonName:   "devserve self-signed",
		},
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(opts.ValidFor),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	for _, host := range opts.Hosts {
		if ip := net.ParseIP(host); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, host)
		}
	}

	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return fmt.Errorf("certs: create certificate: %w", err)
	}

	for _, path := range []string{opts.CertFile, opts.KeyFile} {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("certs: create dir %s: %w", dir, err)
			}
		}
	}

	certPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: certDER,
	})
	if err := os.WriteFile(opts.CertFile, certPEM, 0644); err != nil {
		return fmt.Errorf("certs: write cert %s: %w", opts.CertFile, err)
	}

	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return fmt.Errorf("certs: marshal key: %w", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "EC PRIVATE KEY",
		Bytes: keyDER,
	})
	if err := os.WriteFile(opts.KeyFile, keyPEM, 0600); err != nil {
		return fmt.Errorf("certs: write key %s: %w", opts.KeyFile, err)
	}

	return nil
}
