package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvListen, "")
	t.Setenv(EnvTLS, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Daemon.Listen != ":8443" || cfg.Daemon.TLS != TLSAdhoc {
		t.Fatalf("unexpected daemon config: %+v", cfg.Daemon)
	}
	if cfg.VPN.Interface != "tun0" || cfg.Supervisor.Program != "openconnect-vpn" {
		t.Fatalf("unexpected defaults: %+v %+v", cfg.VPN, cfg.Supervisor)
	}
	if cfg.Logs.DefaultLines != 50 {
		t.Fatalf("default lines = %d, want 50", cfg.Logs.DefaultLines)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvListen, "")
	t.Setenv(EnvTLS, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "daemon:\n  listen: \":9000\"\n  tls: \"off\"\nsupervisor:\n  program: vpn\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Daemon.Listen != ":9000" || cfg.Daemon.TLS != TLSOff {
		t.Fatalf("unexpected daemon config: %+v", cfg.Daemon)
	}
	if cfg.Supervisor.Program != "vpn" || cfg.Supervisor.Binary != "supervisorctl" {
		t.Fatalf("unexpected supervisor config: %+v", cfg.Supervisor)
	}
	if cfg.Logs.Stdout == "" || cfg.VPN.ResolvConf != "/etc/resolv.conf" {
		t.Fatalf("defaults lost: %+v %+v", cfg.Logs, cfg.VPN)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("daemon:\n  listen: \":9000\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvListen, "127.0.0.1:7000")
	t.Setenv(EnvTLS, "off")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Daemon.Listen != "127.0.0.1:7000" || cfg.Daemon.TLS != TLSOff || cfg.Daemon.LogLevel != "debug" {
		t.Fatalf("env overrides not applied: %+v", cfg.Daemon)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("daemon: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateTLS(t *testing.T) {
	cfg := Defaults()
	cfg.Daemon.TLS = TLSFiles
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for files mode without cert/key")
	}
	cfg.Daemon.CertFile, cfg.Daemon.KeyFile = "cert.pem", "key.pem"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Daemon.TLS = "mutual"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown tls mode")
	}
}

func TestDurations(t *testing.T) {
	s := SupervisorConfig{StartSettle: "bogus", StopSettle: "250ms"}
	if s.StartSettleDuration() != 2*time.Second {
		t.Errorf("start settle = %v, want fallback 2s", s.StartSettleDuration())
	}
	if s.StopSettleDuration() != 250*time.Millisecond {
		t.Errorf("stop settle = %v, want 250ms", s.StopSettleDuration())
	}
	w := WebConfig{}
	if w.StatusPollDuration() != 5*time.Second || w.ConnectPollDuration() != 500*time.Millisecond {
		t.Errorf("web poll fallbacks wrong: %v %v", w.StatusPollDuration(), w.ConnectPollDuration())
	}
}
