package dns

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

// Resolver resolves domain names to IP addresses using a specified DNS server.
type Resolver struct {
	Server  string // DNS server address (e.g., "127.0.0.1:53")
	Timeout time.Duration
}

// NewResolver creates a resolver that queries the given DNS server.
func NewResolver(server string) *Resolver {
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}
	return &Resolver{
		Server:  server,
		Timeout: 3 * time.Second,
	}
}

// Resolve returns all A-record IPv4 addresses for a domain.
func (r *Resolver) Resolve(ctx context.Context, domain string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	msg.RecursionDesired = true

	client := &dns.Client{Timeout: r.Timeout}
	resp, _, err := client.ExchangeContext(ctx, msg, r.Server)
	if err != nil {
		return nil, fmt.Errorf("dns query %s: %w", domain, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("dns query %s: rcode %s", domain, dns.RcodeToString[resp.Rcode])
	}

	var ips []string
	for _, ans := range resp.Answer {
		if a, ok := ans.(*dns.A); ok && !a.A.IsUnspecified() {
			ips = append(ips, a.A.String())
		}
	}
	return ips, nil
}

// ServerCheck is the outcome of querying one nameserver.
type ServerCheck struct {
	Server string `json:"server"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// CheckServers queries every server for domain and reports which ones answer.
func CheckServers(ctx context.Context, servers []string, domain string) []ServerCheck {
	out := make([]ServerCheck, 0, len(servers))
	for _, s := range servers {
		c := ServerCheck{Server: s}
		ips, err := NewResolver(s).Resolve(ctx, domain)
		switch {
		case err != nil:
			c.Detail = err.Error()
		case len(ips) == 0:
			c.OK = true
			c.Detail = "no A records for " + domain
		default:
			c.OK = true
			c.Detail = fmt.Sprintf("%s -> %s", domain, ips[0])
		}
		out = append(out, c)
	}
	return out
}
