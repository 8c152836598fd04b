package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

var ErrMissingInput = errors.New("input file missing")

// Resolve checks that every input path exists and returns their absolute
// paths in argument order. Only missing inputs are errors; they are reported
// together and mean the run must not start. Inputs that exist but look
// unreadable (a directory, a failed stat) are logged and passed through so the
// stage reading them reports the failure.
func Resolve(logger *slog.Logger, inputs ...string) ([]string, error) {
	resolved := make([]string, 0, len(inputs))
	var errs []error

	for _, input := range inputs {
		abs, err := resolveFile(input, logger)
		if err != nil {
			logger.Error("input not usable", "input", input, "error", err)
			errs = append(errs, err)
			continue
		}
		logger.Debug("resolved input", "input", input, "path", abs)
		resolved = append(resolved, abs)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return resolved, nil
}

func resolveFile(input string, logger *slog.Logger) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%w: empty path", ErrMissingInput)
	}

	absPath, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolving path %s: %w", input, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrMissingInput, absPath)
		}
		logger.Warn("cannot stat input", "path", absPath, "error", err)
		return absPath, nil
	}

	if !info.Mode().IsRegular() {
		logger.Warn("input is not a regular file", "path", absPath, "mode", info.Mode().String())
	}
	return absPath, nil
}
