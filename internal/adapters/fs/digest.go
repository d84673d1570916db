// Package fs provides filesystem and content-digest helpers for the sync
// engine.
package fs

import (
	"crypto/sha1" //nolint:gosec // The manifest format mandates SHA-1 digests.
	"encoding/hex"
	"strings"
)

// Digest computes the hex SHA-1 content digest of data.
func Digest(data []byte) string {
	sum := sha1.Sum(data) //nolint:gosec // See package note on SHA-1.
	return hex.EncodeToString(sum[:])
}

// VerifyDigest reports whether data hashes to the expected hex digest. The
// comparison is case-normalized; a malformed expected digest simply never
// matches.
func VerifyDigest(data []byte, expected string) bool {
	return Digest(data) == strings.ToLower(expected)
}
