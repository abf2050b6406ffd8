// Package settings exposes the VPN client's connection settings, which are
// supplied to the container through environment variables.
package settings

import "os"

// Environment variable names and their defaults.
const (
	EnvUser       = "VPN_USER"
	EnvServer     = "VPN_SERVER"
	EnvAuthGroup  = "VPN_AUTHGROUP"
	EnvDuoMethod  = "DUO_METHOD"
	EnvDNSServers = "DNS_SERVERS"

	DefaultUser       = ""
	DefaultServer     = "vpn.illinois.edu"
	DefaultAuthGroup  = "OpenConnect1 (Split)"
	DefaultDuoMethod  = "push"
	DefaultDNSServers = "130.126.2.131"
)

// Snapshot is the current set of VPN settings.
type Snapshot struct {
	User       string `json:"user"`
	Server     string `json:"server"`
	AuthGroup  string `json:"authgroup"`
	DuoMethod  string `json:"duoMethod"`
	DNSServers string `json:"dnsServers"`
}

// Read builds a Snapshot from the process environment.
func Read() Snapshot {
	return ReadFrom(os.LookupEnv)
}

// ReadFrom builds a Snapshot using lookup for each variable. Unset
// variables take their default; a variable set to "" stays empty.
func ReadFrom(lookup func(string) (string, bool)) Snapshot {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return def
	}
	return Snapshot{
		User:       get(EnvUser, DefaultUser),
		Server:     get(EnvServer, DefaultServer),
		AuthGroup:  get(EnvAuthGroup, DefaultAuthGroup),
		DuoMethod:  get(EnvDuoMethod, DefaultDuoMethod),
		DNSServers: get(EnvDNSServers, DefaultDNSServers),
	}
}
