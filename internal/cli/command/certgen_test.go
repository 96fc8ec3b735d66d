package command

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codeaj001/devserve/internal/infra/certs"
)

func TestCertgenCommand(t *testing.T) {
	cmd := CertgenCommand()
	if cmd == nil {
		t.Fatal("CertgenCommand returned nil")
	}
	if cmd.Name != "certgen" {
		t.Errorf("Name = %q, want certgen", cmd.Name)
	}
}

func TestCertgen_WritesPair(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "ssl", "server.crt")
	keyFile := filepath.Join(dir, "ssl", "server.key")

	var out bytes.Buffer
	app := App()
	app.Writer = &out

	err := app.Run([]string{"devserve", "certgen", "--cert", certFile, "--key", keyFile})
	if err != nil {
		t.Fatalf("certgen error = %v", err)
	}

	if err := certs.Exists(certFile, keyFile); err != nil {
		t.Errorf("pair not written: %v", err)
	}
	if !strings.Contains(out.String(), certFile) {
		t.Errorf("output %q should name the certificate path", out.String())
	}

	if _, err := certs.Load(certFile, keyFile); err != nil {
		t.Errorf("generated pair does not load: %v", err)
	}
}

func TestCertgen_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "server.crt")
	keyFile := filepath.Join(dir, "server.key")

	run := func(extra ...string) error {
		app := App()
		app.Writer = &bytes.Buffer{}
		args := []string{"devserve", "certgen", "--cert", certFile, "--key", keyFile}
		return app.Run(append(args, extra...))
	}

	if err := run(); err != nil {
		t.Fatalf("first certgen error = %v", err)
	}

	err := run()
	if err == nil {
		t.Fatal("second certgen expected error without --force")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error = %v, want guidance about --force", err)
	}

	if err := run("--force"); err != nil {
		t.Errorf("certgen --force error = %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	app := App()
	app.Writer = &out

	if err := app.Run([]string{"devserve", "version"}); err != nil {
		t.Fatalf("version error = %v", err)
	}

	if !strings.Contains(out.String(), "devserve") {
		t.Errorf("version output = %q, want it to mention devserve", out.String())
	}
}
