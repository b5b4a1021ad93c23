package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const lockFileName = ".matricula.lock"

// Lock is an advisory lock file guarding the data directory for the
// lifetime of one run. Concurrent access to the backing files is otherwise
// unsupported (last writer wins), so this only guards against accidentally
// running two copies of the tool at once.
type Lock struct {
	path string
}

// AcquireLock claims the data directory. It fails if another process holds
// the lock file.
func AcquireLock(dir string) (*Lock, error) {
	path := filepath.Join(dir, lockFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("data directory %s is locked by another run (remove %s if stale)", dir, path)
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	_, _ = file.WriteString(strconv.Itoa(os.Getpid()))
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return &Lock{path: path}, nil
}

// Release removes the lock file.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
