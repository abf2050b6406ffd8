package dns_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/egorlepa/ocpanel/internal/dns"
)

func TestNameserversFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	data := "# generated by vpnc-script\nsearch example.org\nnameserver 8.8.8.8\noptions ndots:1\nnameserver 1.1.1.1\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	got := dns.Nameservers(path)
	want := []string{"8.8.8.8", "1.1.1.1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNameserversIgnoresIndentedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	data := "nameserver 8.8.8.8\n  nameserver 9.9.9.9\nnameserver\t1.1.1.1\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	got := dns.Nameservers(path)
	want := []string{"8.8.8.8", "1.1.1.1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNameserversBareEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	if err := os.WriteFile(path, []byte("nameserver 8.8.8.8\nnameserver\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := dns.Nameservers(path); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestNameserversMissingFile(t *testing.T) {
	got := dns.Nameservers(filepath.Join(t.TempDir(), "missing"))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestNameserversNoEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	if err := os.WriteFile(path, []byte("search lan\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := dns.Nameservers(path); len(got) != 0 {
		t.Fatalf("expected no servers, got %v", got)
	}
}

func TestNewResolverAddsPort(t *testing.T) {
	tests := map[string]string{
		"8.8.8.8":        "8.8.8.8:53",
		"127.0.0.1:5353": "127.0.0.1:5353",
		"2001:db8::1":    "[2001:db8::1]:53",
	}
	for in, want := range tests {
		if got := dns.NewResolver(in).Server; got != want {
			t.Errorf("NewResolver(%q).Server = %q, want %q", in, got, want)
		}
	}
}
