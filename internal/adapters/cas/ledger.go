// Package cas implements the on-disk sync ledger.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/lanternmc/lantern/internal/core/domain"
	"go.trai.ch/zerr"
)

// Ledger implements ports.SyncLedger using a flat JSON file keyed by
// destination path.
type Ledger struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.SyncRecord
}

// NewLedger creates a Ledger backed by the file at the given path. A missing
// or empty file yields an empty ledger.
func NewLedger(path string) (*Ledger, error) {
	l := &Ledger{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.SyncRecord),
	}
	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) load() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read sync ledger")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &l.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal sync ledger")
	}

	return nil
}

func (l *Ledger) save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.MarshalIndent(l.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal sync ledger")
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for sync ledger")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(l.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write sync ledger")
	}

	return nil
}

// Get retrieves the record for a destination path.
func (l *Ledger) Get(path string) (*domain.SyncRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rec, ok := l.cache[path]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record for a destination path.
func (l *Ledger) Put(path string, rec domain.SyncRecord) error {
	l.mu.Lock()
	l.cache[path] = rec
	l.mu.Unlock()

	return l.save()
}
