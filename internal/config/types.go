package config

import (
	"time"

	"github.com/egorlepa/ocpanel/internal/platform"
)

// TLS modes for the web listener.
const (
	TLSAdhoc = "adhoc" // self-signed certificate generated at startup
	TLSOff   = "off"
	TLSFiles = "files" // cert_file + key_file
)

// Config is the top-level application configuration.
type Config struct {
	Daemon     DaemonConfig     `yaml:"daemon"`
	VPN        VPNConfig        `yaml:"vpn"`
	Supervisor SupervisorConfig `yaml:"supervisor"`
	Logs       LogsConfig       `yaml:"logs"`
	Web        WebConfig        `yaml:"web"`
}

// DaemonConfig holds listener settings.
type DaemonConfig struct {
	Listen   string `yaml:"listen"`
	TLS      string `yaml:"tls"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
	LogLevel string `yaml:"log_level"`
}

// VPNConfig describes where the connected VPN shows up on the host.
type VPNConfig struct {
	Interface  string `yaml:"interface"`
	ResolvConf string `yaml:"resolv_conf"`
}

// SupervisorConfig identifies the supervised VPN client program.
type SupervisorConfig struct {
	Binary      string `yaml:"binary"`
	Program     string `yaml:"program"`
	StartSettle string `yaml:"start_settle"`
	StopSettle  string `yaml:"stop_settle"`
}

// StartSettleDuration is the pause after a successful start or restart.
func (s SupervisorConfig) StartSettleDuration() time.Duration {
	return parseDuration(s.StartSettle, 2*time.Second)
}

// StopSettleDuration is the pause after a successful stop.
func (s SupervisorConfig) StopSettleDuration() time.Duration {
	return parseDuration(s.StopSettle, time.Second)
}

// LogsConfig holds the supervisor capture files of the VPN client.
type LogsConfig struct {
	Stdout       string `yaml:"stdout"`
	Stderr       string `yaml:"stderr"`
	DefaultLines int    `yaml:"default_lines"`
}

// WebConfig holds dashboard settings.
type WebConfig struct {
	GuacamolePort   int    `yaml:"guacamole_port"`
	GuacamolePath   string `yaml:"guacamole_path"`
	StatusPoll      string `yaml:"status_poll"`
	ConnectPoll     string `yaml:"connect_poll"`
	ConnectAttempts int    `yaml:"connect_attempts"`
}

// StatusPollDuration is how often the dashboard refreshes status.
func (w WebConfig) StatusPollDuration() time.Duration {
	return parseDuration(w.StatusPoll, 5*time.Second)
}

// ConnectPollDuration is how often the dashboard checks status after Connect.
func (w WebConfig) ConnectPollDuration() time.Duration {
	return parseDuration(w.ConnectPoll, 500*time.Millisecond)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Daemon: DaemonConfig{
			Listen:   platform.DefaultListen,
			TLS:      TLSAdhoc,
			LogLevel: "info",
		},
		VPN: VPNConfig{
			Interface:  platform.VPNInterface,
			ResolvConf: platform.ResolvConf,
		},
		Supervisor: SupervisorConfig{
			Binary:      platform.SupervisorBinary,
			Program:     platform.SupervisorProgram,
			StartSettle: "2s",
			StopSettle:  "1s",
		},
		Logs: LogsConfig{
			Stdout:       platform.VPNStdoutLog,
			Stderr:       platform.VPNStderrLog,
			DefaultLines: 50,
		},
		Web: WebConfig{
			GuacamolePort:   platform.GuacamolePort,
			GuacamolePath:   platform.GuacamolePath,
			StatusPoll:      "5s",
			ConnectPoll:     "500ms",
			ConnectAttempts: 60,
		},
	}
}
