package samplestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"fhirpub/internal/config"
	"fhirpub/internal/domain/entity"
)

// Loader reads FHIR sample resources from .json files in a directory.
// Loading never fails: a missing or unreadable directory yields an empty
// result, and bad files are skipped so one broken sample cannot take the
// rest down.
type Loader struct {
	dir    string
	logger *zap.Logger
}

// NewLoader creates a Loader for the configured samples directory.
func NewLoader(cfg *config.Config, logger *zap.Logger) *Loader {
	return &Loader{
		dir:    cfg.SamplesPath,
		logger: logger.Named("sample-loader"),
	}
}

// Load enumerates *.json files (non-recursive) and returns the raw text of
// every file that holds well-formed, non-empty JSON. Files that are empty
// after trimming are skipped silently; read and parse failures are logged
// and skipped.
func (l *Loader) Load() []entity.Sample {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.logger.Warn("samples directory does not exist",
			zap.String("path", l.dir),
			zap.Error(err),
		)
		return nil
	}

	var samples []entity.Sample
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		path := filepath.Join(l.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			l.logger.Error("error loading sample file",
				zap.String("file", e.Name()),
				zap.Error(err),
			)
			continue
		}

		content := strings.TrimSpace(string(data))
		if content == "" {
			continue
		}

		// Validate well-formedness only; the payload is published as-is.
		var probe json.RawMessage
		if err := json.Unmarshal([]byte(content), &probe); err != nil {
			l.logger.Error("error loading sample file",
				zap.String("file", e.Name()),
				zap.Error(err),
			)
			continue
		}

		samples = append(samples, entity.Sample(content))
		l.logger.Info("loaded FHIR sample", zap.String("file", e.Name()))
	}

	return samples
}
