package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// SyncRecord remembers a successful verification of a destination file. A
// later sync can skip re-hashing the file when the descriptor fingerprint
// and the file's size and modification time are all unchanged. Any mismatch
// falls back to a full digest check, so the record is a shortcut, never an
// integrity authority.
type SyncRecord struct {
	Fingerprint string    `json:"fingerprint"`
	Size        int64     `json:"size"`
	ModTime     time.Time `json:"mod_time"`
	VerifiedAt  time.Time `json:"verified_at"`
}

// Fingerprint derives a deterministic id for a descriptor's identity. Two
// descriptors with the same URL, digest and size fingerprint identically.
func (d ArtifactDescriptor) Fingerprint() string {
	h := xxhash.New()
	_, _ = h.WriteString(d.URL)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(d.SHA1)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(fmt.Sprintf("%d", d.Size))
	return fmt.Sprintf("%016x", h.Sum64())
}
