package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists rendered reports under a base directory.
type Store struct {
	baseDir string
}

// NewStore ensures the export directory exists and returns a handle.
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		baseDir = "./exports"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create exports directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes the rendered report and returns the full path.
func (s *Store) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(s.baseDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}
