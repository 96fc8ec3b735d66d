// Package config defines the devserve configuration structure.
package config

// Default configuration values.
const (
	DefaultAddr = ":3000"
	DefaultDir  = "."

	DefaultCertFile = "ssl/server.crt"
	DefaultKeyFile  = "ssl/server.key"

	DefaultMetricsAddr = "127.0.0.1:3100"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Addr: DefaultAddr,
			Dir:  DefaultDir,
		},
		TLS: TLSSection{
			CertFile: DefaultCertFile,
			KeyFile:  DefaultKeyFile,
			Watch:    true,
		},
		Metrics: MetricsSection{
			Enabled: false,
			Addr:    DefaultMetricsAddr,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
