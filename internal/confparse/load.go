package confparse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/giantswarm/procfiles/internal/fileutil"
	"github.com/giantswarm/procfiles/internal/sentinel"
)

// ErrConfigNotFound is returned by Load when the configuration file does not
// exist. The returned error also matches fileutil.ErrNotFound.
const ErrConfigNotFound = sentinel.Error("config file not found")

// ErrNotImplemented is returned by Save.
const ErrNotImplemented = sentinel.Error("saving configuration is not implemented")

// Load reads the file at path and parses it.
func Load(path string) (map[string]string, error) {
	content, err := fileutil.ReadFile(path)
	if err != nil {
		if errors.Is(err, fileutil.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	return Parse(content), nil
}

// Save does not write anything. It logs that persistence is unavailable and
// returns ErrNotImplemented.
func Save(logger *slog.Logger, path string, _ map[string]string) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("saving configuration is not implemented", "path", path)
	return ErrNotImplemented
}
