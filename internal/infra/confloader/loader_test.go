package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Server struct {
		Addr   string `koanf:"addr"`
		Dir    string `koanf:"dir"`
		MaxRPS int    `koanf:"max_rps"`
	} `koanf:"server"`
	TLS struct {
		CertFile string `koanf:"cert_file"`
	} `koanf:"tls"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devserve.yaml")
	data := []byte("server:\n  addr: \":8443\"\n  dir: /srv/www\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg testConfig
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":8443" {
		t.Errorf("server.addr = %q, want :8443", cfg.Server.Addr)
	}
	if cfg.Server.Dir != "/srv/www" {
		t.Errorf("server.dir = %q, want /srv/www", cfg.Server.Dir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testConfig
	l := NewLoader(WithConfigFile("/nonexistent/devserve.yaml"))
	if err := l.Load(&cfg); err == nil {
		t.Error("Load() expected error for missing config file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devserve.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("DEVSERVE_LOG_LEVEL", "error")

	var cfg testConfig
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("log.level = %q, want error (env should override file)", cfg.Log.Level)
	}
}

func TestLoad_EnvUnderscoreKeys(t *testing.T) {
	t.Setenv("DEVSERVE_TLS_CERT_FILE", "/custom/server.crt")
	t.Setenv("DEVSERVE_SERVER_MAX_RPS", "9")

	var cfg testConfig
	l := NewLoader()
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TLS.CertFile != "/custom/server.crt" {
		t.Errorf("tls.cert_file = %q, want /custom/server.crt", cfg.TLS.CertFile)
	}
	if cfg.Server.MaxRPS != 9 {
		t.Errorf("server.max_rps = %d, want 9", cfg.Server.MaxRPS)
	}
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("CUSTOM_SERVER_ADDR", ":9000")
	t.Setenv("DEVSERVE_SERVER_ADDR", ":3000")

	var cfg testConfig
	l := NewLoader(WithEnvPrefix("CUSTOM_"))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("server.addr = %q, want :9000", cfg.Server.Addr)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DEVSERVE_SERVER_DIR=/tmp/pub\n"), 0644); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	// godotenv exports into the real environment; undo afterwards.
	t.Setenv("DEVSERVE_SERVER_DIR", "")
	os.Unsetenv("DEVSERVE_SERVER_DIR")

	var cfg testConfig
	l := NewLoader(WithDotEnv(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Dir != "/tmp/pub" {
		t.Errorf("server.dir = %q, want /tmp/pub", cfg.Server.Dir)
	}
}

func TestLoad_DotEnvMissing(t *testing.T) {
	var cfg testConfig
	l := NewLoader(WithDotEnv(filepath.Join(t.TempDir(), ".env")))
	if err := l.Load(&cfg); err != nil {
		t.Errorf("Load() error = %v, want nil for missing dotenv", err)
	}
}

func TestLoadMap(t *testing.T) {
	var cfg testConfig
	l := NewLoader()
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	overrides := map[string]any{
		"server.addr":   ":4443",
		"tls.cert_file": "/override/server.crt",
	}
	if err := l.LoadMap(overrides); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if cfg.Server.Addr != ":4443" {
		t.Errorf("server.addr = %q, want :4443", cfg.Server.Addr)
	}
	if cfg.TLS.CertFile != "/override/server.crt" {
		t.Errorf("tls.cert_file = %q, want /override/server.crt", cfg.TLS.CertFile)
	}
}
