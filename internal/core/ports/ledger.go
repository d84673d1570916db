package ports

import "github.com/lanternmc/lantern/internal/core/domain"

// SyncLedger persists verification records so that an unchanged on-disk file
// does not have to be re-read and re-hashed on every run. Implementations
// must tolerate a missing or empty backing file.
//
//go:generate mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks
type SyncLedger interface {
	// Get returns the record for a destination path, or nil when absent.
	Get(path string) (*domain.SyncRecord, error)
	// Put stores the record for a destination path.
	Put(path string, rec domain.SyncRecord) error
}
