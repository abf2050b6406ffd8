package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvListen   = "OCPANEL_LISTEN"
	EnvTLS      = "OCPANEL_TLS"
	EnvLogLevel = "OCPANEL_LOG_LEVEL"
)

// Load reads the config from path and applies environment overrides.
// If the file doesn't exist, defaults are used.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	cfg.fillEmpty()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvListen); ok && v != "" {
		c.Daemon.Listen = v
	}
	if v, ok := lookup(EnvTLS); ok && v != "" {
		c.Daemon.TLS = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Daemon.LogLevel = v
	}
}

// fillEmpty restores defaults for keys a partial file set to zero values.
func (c *Config) fillEmpty() {
	d := Defaults()
	if c.Daemon.Listen == "" {
		c.Daemon.Listen = d.Daemon.Listen
	}
	if c.Daemon.TLS == "" {
		c.Daemon.TLS = d.Daemon.TLS
	}
	if c.VPN.Interface == "" {
		c.VPN.Interface = d.VPN.Interface
	}
	if c.VPN.ResolvConf == "" {
		c.VPN.ResolvConf = d.VPN.ResolvConf
	}
	if c.Supervisor.Binary == "" {
		c.Supervisor.Binary = d.Supervisor.Binary
	}
	if c.Supervisor.Program == "" {
		c.Supervisor.Program = d.Supervisor.Program
	}
	if c.Logs.DefaultLines <= 0 {
		c.Logs.DefaultLines = d.Logs.DefaultLines
	}
	if c.Web.GuacamolePort <= 0 {
		c.Web.GuacamolePort = d.Web.GuacamolePort
	}
	if c.Web.ConnectAttempts <= 0 {
		c.Web.ConnectAttempts = d.Web.ConnectAttempts
	}
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Daemon.TLS {
	case TLSAdhoc, TLSOff:
	case TLSFiles:
		if c.Daemon.CertFile == "" || c.Daemon.KeyFile == "" {
			return errors.New("tls mode \"files\" requires cert_file and key_file")
		}
	default:
		return fmt.Errorf("unknown tls mode %q (want adhoc, off or files)", c.Daemon.TLS)
	}
	return nil
}
