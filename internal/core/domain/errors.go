package domain

import "go.trai.ch/zerr"

var (
	// ErrIntegrity is returned when fetched or on-disk bytes do not match
	// the expected digest. Corrupt fetched bytes are never written to disk.
	ErrIntegrity = zerr.New("digest mismatch")

	// ErrTransport is returned when an artifact could not be fetched.
	ErrTransport = zerr.New("artifact fetch failed")

	// ErrVersionNotFound is returned when the requested version id is not
	// present in the version manifest.
	ErrVersionNotFound = zerr.New("version not found")

	// ErrSyncFailed is returned by the orchestrator when any artifact of a
	// sync run failed; the per-artifact cause is attached.
	ErrSyncFailed = zerr.New("artifact synchronization failed")

	// ErrLaunchFailed is returned when the game process could not be
	// started or exited with an error.
	ErrLaunchFailed = zerr.New("launch failed")
)
