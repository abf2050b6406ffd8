package daemon

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/egorlepa/ocpanel/internal/config"
	"github.com/egorlepa/ocpanel/internal/healthcheck"
	"github.com/egorlepa/ocpanel/internal/logtail"
	"github.com/egorlepa/ocpanel/internal/platform"
	"github.com/egorlepa/ocpanel/internal/probe"
	"github.com/egorlepa/ocpanel/internal/service"
	"github.com/egorlepa/ocpanel/internal/web"
)

// Components are the request-scoped collaborators built from config.
type Components struct {
	Prober     *probe.Prober
	Logs       *logtail.Reader
	Supervisor *service.Supervisor
	Checker    *healthcheck.Checker
}

// NewComponents wires every component to the host using cfg.
func NewComponents(cfg *config.Config, logger *slog.Logger) Components {
	runner := platform.ExecRunner{}
	sup := service.NewSupervisor(runner, cfg.Supervisor.Binary, cfg.Supervisor.Program,
		cfg.Supervisor.StartSettleDuration(), cfg.Supervisor.StopSettleDuration(), logger)
	logFiles := []string{cfg.Logs.Stdout, cfg.Logs.Stderr}
	return Components{
		Prober:     probe.New(runner, cfg.VPN.Interface, cfg.VPN.ResolvConf, logger),
		Logs:       logtail.New(logFiles...),
		Supervisor: sup,
		Checker: &healthcheck.Checker{
			Supervisor: sup,
			Interface:  cfg.VPN.Interface,
			ResolvConf: cfg.VPN.ResolvConf,
			LogFiles:   logFiles,
			Binaries:   []string{"ip", cfg.Supervisor.Binary},
		},
	}
}

// Daemon runs the web UI server.
type Daemon struct {
	Config  *config.Config
	Logger  *slog.Logger
	Version string
}

// New creates a new Daemon.
func New(cfg *config.Config, logger *slog.Logger, version string) *Daemon {
	return &Daemon{Config: cfg, Logger: logger, Version: version}
}

// Run serves the web UI, blocking until ctx is cancelled or a signal is received.
func (d *Daemon) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c := NewComponents(d.Config, d.Logger)
	handler := web.NewServer(d.Config, c.Prober, c.Logs, c.Supervisor, c.Checker, d.Logger, d.Version)

	tlsCfg, err := d.tlsConfig()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", d.Config.Daemon.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", d.Config.Daemon.Listen, err)
	}
	if tlsCfg != nil {
		ln = tls.NewListener(ln, tlsCfg)
	}

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		d.Logger.Info("web UI started", "listen", ln.Addr().String(), "tls", d.Config.Daemon.TLS)
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server: %w", err)
	case <-ctx.Done():
		d.Logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (d *Daemon) tlsConfig() (*tls.Config, error) {
	switch d.Config.Daemon.TLS {
	case config.TLSOff:
		return nil, nil
	case config.TLSFiles:
		cert, err := tls.LoadX509KeyPair(d.Config.Daemon.CertFile, d.Config.Daemon.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load tls key pair: %w", err)
		}
		return &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}, nil
	default:
		cert, err := SelfSignedCert(time.Now())
		if err != nil {
			return nil, fmt.Errorf("generate self-signed certificate: %w", err)
		}
		d.Logger.Warn("serving with an ad-hoc self-signed certificate")
		return &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}, nil
	}
}
