package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/egorlepa/ocpanel/internal/cli"
	"github.com/egorlepa/ocpanel/internal/settings"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, stdoutLog string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "logs:\n  stdout: " + stdoutLog + "\n  stderr: " + filepath.Join(dir, "missing.log") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	cli.SetVersion("1.2.3")
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Fatalf("got %q", out)
	}
}

func TestLogsCommand(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "vpn.log")
	if err := os.WriteFile(logPath, []byte("one\ntwo\none\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := writeConfig(t, logPath)

	out, err := run(t, "--config", cfg, "logs", "-n", "2")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "two\nthree" {
		t.Fatalf("got %q", out)
	}
}

func TestSettingsCommand(t *testing.T) {
	t.Setenv(settings.EnvUser, "netid")

	out, err := run(t, "settings")
	if err != nil {
		t.Fatal(err)
	}
	var snap settings.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if snap.User != "netid" {
		t.Fatalf("user = %q", snap.User)
	}
}

func TestServeRejectsUnknownTLSMode(t *testing.T) {
	cfg := writeConfig(t, filepath.Join(t.TempDir(), "x.log"))
	if _, err := run(t, "--config", cfg, "serve", "--tls", "bogus", "--listen", "127.0.0.1:0"); err == nil {
		t.Fatal("expected error for unknown tls mode")
	}
}
