package healthcheck

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/egorlepa/ocpanel/internal/dns"
	"github.com/egorlepa/ocpanel/internal/service"
)

// Result represents a single health check outcome.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Checker runs diagnostics against the local VPN setup.
type Checker struct {
	Supervisor *service.Supervisor
	Interface  string
	ResolvConf string
	LogFiles   []string
	Binaries   []string // required on PATH

	// SysClassNet is the sysfs directory holding interface state.
	SysClassNet string
}

// RunChecks performs all health checks and returns the results.
func (c *Checker) RunChecks(ctx context.Context) []Result {
	return []Result{
		c.checkBinaries(),
		c.checkSupervisor(ctx),
		c.checkInterface(),
		c.checkResolvConf(),
		c.checkLogs(),
	}
}

// Healthy reports whether every result passed.
func Healthy(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

func (c *Checker) checkBinaries() Result {
	r := Result{Name: "binaries"}
	var missing []string
	for _, b := range c.Binaries {
		if _, err := exec.LookPath(b); err != nil {
			missing = append(missing, b)
		}
	}
	if len(missing) > 0 {
		r.Detail = "missing: " + strings.Join(missing, ", ")
		return r
	}
	r.Passed = true
	r.Detail = strings.Join(c.Binaries, ", ")
	return r
}

func (c *Checker) checkSupervisor(ctx context.Context) Result {
	r := Result{Name: "supervisor"}
	line, running, err := c.Supervisor.Status(ctx)
	if err != nil {
		r.Detail = err.Error()
		return r
	}
	r.Passed = running
	r.Detail = line
	return r
}

// checkInterface checks that the VPN interface exists and is UP.
func (c *Checker) checkInterface() Result {
	r := Result{Name: "interface " + c.Interface}
	dir := c.SysClassNet
	if dir == "" {
		dir = "/sys/class/net"
	}
	data, err := os.ReadFile(dir + "/" + c.Interface + "/operstate")
	if err != nil {
		r.Detail = "not present"
		return r
	}
	state := strings.TrimSpace(string(data))
	r.Passed = state == "up" || state == "unknown"
	r.Detail = "operstate " + state
	return r
}

func (c *Checker) checkResolvConf() Result {
	r := Result{Name: "resolv.conf"}
	servers := dns.Nameservers(c.ResolvConf)
	if len(servers) == 0 {
		r.Detail = fmt.Sprintf("no nameservers in %s", c.ResolvConf)
		return r
	}
	r.Passed = true
	r.Detail = strings.Join(servers, ", ")
	return r
}

func (c *Checker) checkLogs() Result {
	r := Result{Name: "logs"}
	var found []string
	for _, p := range c.LogFiles {
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		}
	}
	if len(found) == 0 {
		r.Detail = "no log files yet"
		return r
	}
	r.Passed = true
	r.Detail = strings.Join(found, ", ")
	return r
}
