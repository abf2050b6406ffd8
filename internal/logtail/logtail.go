// Package logtail reads the recent output of the supervised VPN client.
package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

const (
	// Banner is the separator line the VPN start script writes between runs.
	Banner = "=================="

	// Placeholder is returned when no log lines are available.
	Placeholder = "No logs yet. Click Connect to start the VPN."

	DefaultLines = 50
)

// Reader tails the stdout and stderr capture files of the VPN client.
type Reader struct {
	Paths []string // read in order; missing files are skipped
}

// New creates a Reader over the given files.
func New(paths ...string) *Reader {
	return &Reader{Paths: paths}
}

// Tail returns the last maxLines unique, non-blank lines across all files
// joined with newlines. Read errors are reported in the returned text.
func (r *Reader) Tail(maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultLines
	}

	var lines []string
	for _, p := range r.Paths {
		ls, err := readLines(p)
		if err != nil {
			return fmt.Sprintf("Error reading logs: %v", err)
		}
		lines = append(lines, ls...)
	}

	lines = Dedupe(lines)
	if len(lines) == 0 {
		return Placeholder
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}

// Dedupe strips trailing whitespace, drops blank and banner lines, and keeps
// the first occurrence of each remaining line.
func Dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimRightFunc(l, unicode.IsSpace)
		if l == "" || l == Banner {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
}
