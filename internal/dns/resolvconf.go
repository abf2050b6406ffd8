package dns

import (
	"bufio"
	"os"
	"strings"
)

// Nameservers returns the nameserver addresses listed in a resolv.conf-style
// file, in file order. Only lines starting with "nameserver" count; an
// indented entry is ignored. Any read or parse failure yields an empty list.
func Nameservers(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return []string{}
	}
	defer f.Close()

	servers := []string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "nameserver") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			// A bare "nameserver" line makes the whole file unreadable.
			return []string{}
		}
		servers = append(servers, fields[1])
	}
	if sc.Err() != nil {
		return []string{}
	}
	return servers
}
