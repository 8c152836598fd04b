// Package intake runs one pass of the arrivals pipeline: check inputs, load
// the name pool, parse arrivals, write the report.
package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/olehluchkiv/zooreport/internal/arrivals"
	"github.com/olehluchkiv/zooreport/internal/config"
	"github.com/olehluchkiv/zooreport/internal/names"
	"github.com/olehluchkiv/zooreport/internal/report"
	"github.com/olehluchkiv/zooreport/internal/resolver"
)

// Summary describes a finished run.
type Summary struct {
	*arrivals.Result
	ReportPath string
}

// Options tweaks a run beyond what Config carries.
type Options struct {
	// Pick overrides the name picker built from Config.Seed.
	Pick arrivals.Picker
}

// Run executes the pipeline described by cfg. Console receives the
// human-readable trace and diagnostics.
//
// Missing inputs abort before any work and return an error wrapping
// resolver.ErrMissingInput. Read failures are reported and processing
// continues with partial data. A failed report write returns an error
// wrapping report.ErrWriteReport along with the summary.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, console io.Writer, opts Options) (*Summary, error) {
	paths, err := resolver.Resolve(logger, cfg.NamesFile, cfg.ArrivalsFile)
	if err != nil {
		if errors.Is(err, resolver.ErrMissingInput) {
			fmt.Fprintln(console, "Error: One or both input files are missing.")
		} else {
			fmt.Fprintf(console, "Error: %v\n", err)
		}
		return nil, err
	}
	namesPath, arrivalsPath := paths[0], paths[1]

	pool := names.Load(namesPath, logger, console)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pick := opts.Pick
	if pick == nil {
		pick = arrivals.NewRandomPicker(cfg.Seed)
	}
	parser := arrivals.NewParser(pool, pick, logger, console)
	res := parser.ParseFile(arrivalsPath)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{Result: res, ReportPath: cfg.ReportFile}

	content := report.Generate(res.Records, res.Tally)
	if err := report.WriteFile(cfg.ReportFile, content); err != nil {
		fmt.Fprintf(console, "Error writing file: %v\n", err)
		logger.Error("failed to write report", "path", cfg.ReportFile, "error", err)
		return summary, err
	}

	fmt.Fprintln(console, "Report generated successfully.")
	logger.Info("report written",
		"path", cfg.ReportFile,
		"records", len(res.Records),
		"species", len(res.Tally.Species()),
		"skipped", len(res.Skips),
	)
	return summary, nil
}
