// Package config defines the devserve configuration structure.
package config

// ServerConfig is the root configuration for devserve.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	TLS     TLSSection     `koanf:"tls"`
	Metrics MetricsSection `koanf:"metrics"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures the serving endpoint.
type ServerSection struct {
	// Addr is the HTTPS listen address.
	Addr string `koanf:"addr"`

	// Dir is the directory to serve. Defaults to the working directory.
	Dir string `koanf:"dir"`

	// MaxRPS throttles each client to this many requests per second.
	// Zero disables the throttle.
	MaxRPS int `koanf:"max_rps"`
}

// TLSSection configures the certificate/key pair.
type TLSSection struct {
	// CertFile is the PEM certificate path.
	CertFile string `koanf:"cert_file"`

	// KeyFile is the PEM private key path.
	KeyFile string `koanf:"key_file"`

	// Watch reloads the pair when the files change on disk.
	Watch bool `koanf:"watch"`
}

// MetricsSection configures the optional Prometheus endpoint.
// It listens on its own address so the serving port stays purely static.
type MetricsSection struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
