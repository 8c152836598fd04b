package internal_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/zooreport/internal/config"
	"github.com/olehluchkiv/zooreport/internal/intake"
	"github.com/olehluchkiv/zooreport/internal/names"
	"github.com/olehluchkiv/zooreport/internal/species"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// zooConfig points at the shared fixtures and writes the report to a temp dir.
func zooConfig(t *testing.T) config.Config {
	t.Helper()
	// go test sets cwd to the package directory.
	dir := filepath.Join("..", "testdata", "zoo")
	cfg := config.Default()
	cfg.NamesFile = filepath.Join(dir, "animalNames.txt")
	cfg.ArrivalsFile = filepath.Join(dir, "arrivingAnimals.txt")
	cfg.ReportFile = filepath.Join(t.TempDir(), "newAnimals.txt")
	return cfg
}

func TestZooFixture_GoldenReport(t *testing.T) {
	cfg := zooConfig(t)
	first := func(int) int { return 0 }

	var console bytes.Buffer
	sum, err := intake.Run(context.Background(), cfg, quietLogger(), &console, intake.Options{Pick: first})
	require.NoError(t, err)

	got, err := os.ReadFile(cfg.ReportFile)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "testdata", "zoo", "newAnimals.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	assert.Equal(t, 8, sum.Lines)
	assert.Len(t, sum.Records, 6)
	require.Len(t, sum.Skips, 1)
	assert.Equal(t, 6, sum.Skips[0].Line)
	assert.Equal(t, "elephant", sum.Skips[0].Species)

	out := console.String()
	for i := 1; i <= 8; i++ {
		assert.Contains(t, out, fmt.Sprintf("%d) ", i), "line %d traced", i)
	}
	assert.Contains(t, out, "Sound: Hyena's laugh!")
	assert.Contains(t, out, "Sound: Tiger's growl!")
	assert.Contains(t, out, "Sound: Bear's grunt!")
	assert.True(t, strings.HasSuffix(out, "Report generated successfully.\n"))
}

func TestZooFixture_RandomNamesStayInPool(t *testing.T) {
	cfg := zooConfig(t)
	cfg.Seed = 11

	sum, err := intake.Run(context.Background(), cfg, quietLogger(), io.Discard, intake.Options{})
	require.NoError(t, err)

	f, err := os.Open(cfg.NamesFile)
	require.NoError(t, err)
	defer f.Close()
	pool, err := names.Parse(f)
	require.NoError(t, err)

	for _, r := range sum.Records {
		assert.Contains(t, pool.Names(r.Species().Key()), r.Name())
	}

	report, err := os.ReadFile(cfg.ReportFile)
	require.NoError(t, err)
	for _, s := range sum.Tally.Species() {
		section := s.Plural() + " (Total: "
		assert.Contains(t, string(report), section)
	}
}

// sectionTotal extracts N from a "Lions (Total: N)" header.
func sectionTotal(header string) (int, error) {
	_, rest, ok := strings.Cut(header, "(Total: ")
	if !ok {
		return 0, fmt.Errorf("not a section header: %q", header)
	}
	return strconv.Atoi(strings.TrimSuffix(rest, ")"))
}

func TestZooFixture_SectionCountsMatchListings(t *testing.T) {
	cfg := zooConfig(t)
	cfg.Seed = 3

	_, err := intake.Run(context.Background(), cfg, quietLogger(), io.Discard, intake.Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ReportFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")[2:]

	var header string
	var want, listed int
	check := func() {
		if header != "" {
			assert.Equal(t, want, listed, header)
		}
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "  - ") {
			listed++
			continue
		}
		check()
		header, listed = line, 0
		n, err := sectionTotal(line)
		require.NoError(t, err, line)
		want = n
	}
	check()
}

func TestZooFixture_MissingTigerSection(t *testing.T) {
	cfg := zooConfig(t)
	cfg.NamesFile = filepath.Join("..", "testdata", "zoo_no_tigers_names.txt")

	var console bytes.Buffer
	sum, err := intake.Run(context.Background(), cfg, quietLogger(), &console, intake.Options{})
	require.NoError(t, err)

	assert.Equal(t, []species.Species{species.Lion}, sum.Tally.Species())
	assert.Contains(t, console.String(), "Skipping animal due to missing name for species: tiger")
	assert.Contains(t, console.String(), "Skipping animal due to missing name for species: hyena")
	assert.Contains(t, console.String(), "Skipping animal due to missing name for species: bear")
}
