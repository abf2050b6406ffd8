// Package probe reports whether the VPN tunnel is up by inspecting the host.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/egorlepa/ocpanel/internal/dns"
	"github.com/egorlepa/ocpanel/internal/platform"
)

// State is the coarse tunnel state.
type State string

const (
	Connected    State = "connected"
	Disconnected State = "disconnected"
	Error        State = "error"
)

const inetMarker = "inet"

// Status is the result of one interface query.
type Status struct {
	State     State
	IP        string    // set when Connected
	Timestamp time.Time // set when Connected
	Err       string    // set when Error
}

// Prober queries the VPN interface and the resolver configuration.
type Prober struct {
	Runner     platform.Runner
	Interface  string
	ResolvConf string
	Logger     *slog.Logger
	Now        func() time.Time
}

// New creates a Prober for the given interface and resolv.conf path.
func New(runner platform.Runner, iface, resolvConf string, logger *slog.Logger) *Prober {
	return &Prober{
		Runner:     runner,
		Interface:  iface,
		ResolvConf: resolvConf,
		Logger:     logger,
		Now:        time.Now,
	}
}

// Status runs `ip addr show <iface>` and extracts the tunnel address.
func (p *Prober) Status(ctx context.Context) Status {
	res, err := p.Runner.Run(ctx, "ip", "addr", "show", p.Interface)
	if err != nil {
		p.Logger.Debug("interface query failed", "interface", p.Interface, "error", err)
		return Status{State: Error, Err: err.Error()}
	}
	if res.ExitCode != 0 || !strings.Contains(res.Stdout, inetMarker) {
		return Status{State: Disconnected}
	}

	ip, err := ParseAddr(res.Stdout, p.Interface)
	if err != nil {
		return Status{State: Error, Err: err.Error()}
	}
	if ip == "" {
		return Status{State: Disconnected}
	}
	return Status{State: Connected, IP: ip, Timestamp: p.Now()}
}

// ParseAddr picks the address from `ip addr show` output. It takes the first
// line that mentions inet but not the interface name, and returns its second
// field without the prefix length. An empty string means no line qualified.
//
// Lines naming the interface are skipped even when they carry the IPv4
// address; inet6 lines match the marker too.
func ParseAddr(output, iface string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, inetMarker) || strings.Contains(line, iface) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return "", fmt.Errorf("unexpected address line %q", strings.TrimSpace(line))
		}
		addr, _, _ := strings.Cut(fields[1], "/")
		return addr, nil
	}
	return "", nil
}

// DNS returns the nameservers currently configured on the host, re-read on
// every call. Read failures yield an empty list.
func (p *Prober) DNS() []string {
	return dns.Nameservers(p.ResolvConf)
}
