package daemon_test

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/egorlepa/ocpanel/internal/config"
	"github.com/egorlepa/ocpanel/internal/daemon"
)

func TestSelfSignedCert(t *testing.T) {
	now := time.Now()
	cert, err := daemon.SelfSignedCert(now)
	if err != nil {
		t.Fatal(err)
	}
	if cert.Leaf == nil {
		t.Fatal("leaf not populated")
	}
	if err := cert.Leaf.VerifyHostname("localhost"); err != nil {
		t.Fatal(err)
	}
	if !cert.Leaf.NotAfter.After(now.Add(300 * 24 * time.Hour)) {
		t.Fatalf("cert expires too early: %v", cert.Leaf.NotAfter)
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()
	return addr
}

func TestRunServesAdhocTLSAndShutsDown(t *testing.T) {
	cfg := config.Defaults()
	cfg.Daemon.Listen = freeAddr(t)
	cfg.Daemon.TLS = config.TLSAdhoc
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- daemon.New(&cfg, logger, "test").Run(ctx) }()

	client := &http.Client{
		Timeout: 2 * time.Second,
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = client.Get("https://" + cfg.Daemon.Listen + "/")
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("daemon did not shut down")
	}
}

func TestRunFilesModeMissingCert(t *testing.T) {
	cfg := config.Defaults()
	cfg.Daemon.Listen = freeAddr(t)
	cfg.Daemon.TLS = config.TLSFiles
	cfg.Daemon.CertFile = t.TempDir() + "/cert.pem"
	cfg.Daemon.KeyFile = t.TempDir() + "/key.pem"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := daemon.New(&cfg, logger, "test").Run(context.Background()); err == nil {
		t.Fatal("expected error for missing key pair")
	}
}
