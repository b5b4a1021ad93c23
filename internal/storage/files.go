// Package storage persists the four collections as flat files: CSV for
// majors, students and courses, JSON for enrollments. Loads never abort the
// process: a missing file yields an empty collection and a corrupt one
// yields an empty collection plus a warning.
package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-cli/pkg/config"
)

// Files is the flat-file repository for all collections.
type Files struct {
	cfg    config.DataConfig
	logger *zap.Logger
}

// NewFiles ensures the data directory exists and returns a handle.
func NewFiles(cfg config.DataConfig, logger *zap.Logger) (*Files, error) {
	if cfg.Dir == "" {
		cfg.Dir = "./data"
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Files{cfg: cfg, logger: logger}, nil
}

func (f *Files) path(name string) string {
	return filepath.Join(f.cfg.Dir, name)
}

// readFile loads a collection file. A missing file is a normal empty state.
func (f *Files) readFile(name string) ([]byte, bool) {
	raw, err := os.ReadFile(f.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("collection file unreadable, using empty collection",
				zap.String("file", name), zap.Error(err))
		}
		return nil, false
	}
	return raw, true
}

// writeAtomic overwrites a collection file via a temp file and rename, so a
// crash mid-write never leaves a truncated collection behind.
func (f *Files) writeAtomic(name string, data *bytes.Buffer) error {
	tmp := f.path(name + ".tmp-" + uuid.NewString())
	if err := os.WriteFile(tmp, data.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, f.path(name)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
