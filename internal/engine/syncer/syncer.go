// Package syncer implements the content-addressed artifact synchronization
// engine: fetch-or-skip with digest verification, batched to bound
// concurrency.
package syncer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lanternmc/lantern/internal/adapters/fs"
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Syncer materializes artifacts on disk, fetching only what is missing or
// corrupt.
type Syncer struct {
	fetcher   ports.Fetcher
	ledger    ports.SyncLedger
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a Syncer. The ledger may be nil, in which case every Ensure
// call re-reads and re-hashes existing files.
func New(fetcher ports.Fetcher, ledger ports.SyncLedger, telemetry ports.Telemetry, logger ports.Logger) *Syncer {
	return &Syncer{
		fetcher:   fetcher,
		ledger:    ledger,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Ensure makes the descriptor's destination file exist with the expected
// content. The on-disk copy is checked first, unconditionally; a fetch
// happens only on a miss or digest mismatch. Fetched bytes that fail
// verification are never written to disk.
func (s *Syncer) Ensure(ctx context.Context, desc domain.ArtifactDescriptor) (domain.SyncStatus, error) {
	if s.localValid(desc) {
		return domain.StatusAlreadyValid, nil
	}

	data, err := s.fetcher.Fetch(ctx, desc.URL)
	if err != nil {
		return domain.StatusFailed, zerr.With(
			zerr.Wrap(err, domain.ErrTransport.Error()),
			"url", desc.URL,
		)
	}

	if !fs.VerifyDigest(data, desc.SHA1) {
		return domain.StatusFailed, zerr.With(
			zerr.With(domain.ErrIntegrity, "expected", desc.SHA1),
			"url", desc.URL,
		)
	}

	if err := fs.WriteFileAtomic(desc.Path, data); err != nil {
		return domain.StatusFailed, err
	}

	s.recordVerified(desc)
	return domain.StatusFetched, nil
}

// localValid reports whether the destination already holds verified
// content. The ledger provides a fast path: when the descriptor fingerprint
// and the file's size and mtime match a prior verification, the file is not
// re-read. Any mismatch falls through to a full digest check.
func (s *Syncer) localValid(desc domain.ArtifactDescriptor) bool {
	st, err := os.Stat(desc.Path)
	if err != nil {
		return false
	}

	if s.ledger != nil {
		rec, err := s.ledger.Get(desc.Path)
		if err == nil && rec != nil &&
			rec.Fingerprint == desc.Fingerprint() &&
			rec.Size == st.Size() &&
			rec.ModTime.Equal(st.ModTime()) {
			return true
		}
	}

	data, err := os.ReadFile(desc.Path)
	if err != nil {
		return false
	}
	if !fs.VerifyDigest(data, desc.SHA1) {
		return false
	}

	s.recordVerified(desc)
	return true
}

// recordVerified stores a verification record. Ledger write failures are
// not fatal: the next run simply re-hashes.
func (s *Syncer) recordVerified(desc domain.ArtifactDescriptor) {
	if s.ledger == nil {
		return
	}

	st, err := os.Stat(desc.Path)
	if err != nil {
		return
	}

	err = s.ledger.Put(desc.Path, domain.SyncRecord{
		Fingerprint: desc.Fingerprint(),
		Size:        st.Size(),
		ModTime:     st.ModTime(),
		VerifiedAt:  time.Now(),
	})
	if err != nil {
		s.logger.Warn(fmt.Sprintf("failed to update sync ledger for %s: %v", desc.Path, err))
	}
}

// SyncAll ensures every descriptor, running at most parallelism fetches at
// once. It returns one result per descriptor in input order, regardless of
// completion order, and never short-circuits: a failed item is reported in
// its slot while the rest of the run continues. The caller decides whether
// any failure aborts the overall run.
func (s *Syncer) SyncAll(ctx context.Context, descs []domain.ArtifactDescriptor, parallelism int) []domain.SyncResult {
	if parallelism <= 0 {
		parallelism = domain.DefaultParallelism
	}

	results := make([]domain.SyncResult, len(descs))

	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, desc := range descs {
		g.Go(func() error {
			results[i] = s.syncOne(ctx, desc)
			return nil
		})
	}

	// Goroutines report through the results slice, never as errors.
	_ = g.Wait()

	return results
}

func (s *Syncer) syncOne(ctx context.Context, desc domain.ArtifactDescriptor) domain.SyncResult {
	if err := ctx.Err(); err != nil {
		return domain.SyncResult{Descriptor: desc, Status: domain.StatusFailed, Err: err}
	}

	ctx, vertex := s.telemetry.Record(ctx, desc.Path)

	status, err := s.Ensure(ctx, desc)
	switch {
	case err != nil:
		vertex.Complete(err)
	case status == domain.StatusAlreadyValid:
		vertex.Cached()
		vertex.Complete(nil)
	default:
		_, _ = fmt.Fprintf(vertex.Stdout(), "fetched %d bytes\n", desc.Size)
		vertex.Complete(nil)
	}

	return domain.SyncResult{Descriptor: desc, Status: status, Err: err}
}

// FirstFailure returns the first failed result's error wrapped with the
// run-level sync failure, or nil when every result succeeded.
func FirstFailure(results []domain.SyncResult) error {
	for _, res := range results {
		if res.Err != nil {
			return zerr.With(
				zerr.Wrap(res.Err, domain.ErrSyncFailed.Error()),
				"path", res.Descriptor.Path,
			)
		}
	}
	return nil
}
