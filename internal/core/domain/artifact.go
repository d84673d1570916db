package domain

// ArtifactDescriptor identifies a single remote file and where it belongs on
// disk. Descriptors are immutable once constructed; the manifest adapter
// produces them and the sync engine consumes them.
type ArtifactDescriptor struct {
	// URL is the remote location the artifact is fetched from.
	URL string
	// SHA1 is the expected content digest as a lowercase hex string.
	SHA1 string
	// Size is the expected byte length. It is advisory only: validity is
	// decided by the digest, never by the size.
	Size int64
	// Path is the absolute destination path on disk.
	Path string
}

// SyncStatus describes how a destination file was brought up to date.
type SyncStatus string

const (
	// StatusAlreadyValid means the on-disk copy matched the expected digest
	// and no fetch was performed.
	StatusAlreadyValid SyncStatus = "already-valid"
	// StatusFetched means the artifact was downloaded and written.
	StatusFetched SyncStatus = "fetched"
	// StatusFailed means the artifact could not be materialized.
	StatusFailed SyncStatus = "failed"
)

// SyncResult is the per-descriptor outcome of a sync run. Results keep the
// input ordering of their descriptors regardless of completion order.
type SyncResult struct {
	Descriptor ArtifactDescriptor
	Status     SyncStatus
	Err        error
}
