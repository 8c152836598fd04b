package names

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const headerSuffix = "Names:"

// maxLineSize bounds a single line of the name bank.
const maxLineSize = 1 << 20

var ErrReadNames = errors.New("reading names file")

// Parse reads a name bank. Sections look like
//
//	Lion Names:
//	Simba, Nala, Mufasa
//
// Lines before the first header are ignored. On a read error Parse returns
// the sections collected so far together with an error wrapping ErrReadNames.
func Parse(r io.Reader) (*Pool, error) {
	pool := NewPool()
	current := ""

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, headerSuffix) {
			current = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(line, headerSuffix)))
			if current != "" {
				pool.open(current)
			}
			continue
		}
		if current == "" {
			continue
		}
		pool.add(current, splitNames(line)...)
	}
	if err := sc.Err(); err != nil {
		return pool, fmt.Errorf("%w: %w", ErrReadNames, err)
	}
	return pool, nil
}

// splitNames splits a line on ", " and drops empty entries.
func splitNames(line string) []string {
	parts := strings.Split(line, ", ")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads the name bank at path. Failures are reported on console and
// logger but never abort: an unreadable file yields an empty pool and a
// failed read yields whatever was parsed before it.
func Load(path string, logger *slog.Logger, console io.Writer) *Pool {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(console, "Error reading names file: %v\n", err)
		logger.Error("failed to open names file", "path", path, "error", err)
		return NewPool()
	}
	defer f.Close()

	pool, err := Parse(f)
	if err != nil {
		fmt.Fprintf(console, "Error reading names file: %v\n", err)
		logger.Error("failed to read names file", "path", path, "error", err)
	}

	logger.Info("name pool loaded", "path", path, "species", pool.Species(), "names_count", pool.Len())
	return pool
}
