package syncer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/lanternmc/lantern/internal/adapters/cas"
	"github.com/lanternmc/lantern/internal/adapters/httpfetch"
	"github.com/lanternmc/lantern/internal/adapters/telemetry"
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/engine/syncer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha1("library-bytes")
const libraryDigest = "6ac178e3637abb0b8e09c8eca5214c79549c5528"

type testLogger struct{}

func (testLogger) Info(string) {}
func (testLogger) Warn(string) {}
func (testLogger) Error(error) {}

func newTestSyncer(t *testing.T, handler http.Handler) (*syncer.Syncer, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := syncer.New(httpfetch.New(), nil, telemetry.NewNoOp(), testLogger{})
	return s, srv.URL
}

func TestEnsure_FetchesOnMiss(t *testing.T) {
	s, url := newTestSyncer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("library-bytes"))
	}))
	dest := filepath.Join(t.TempDir(), "libraries", "asm.jar")

	status, err := s.Ensure(context.Background(), domain.ArtifactDescriptor{
		URL: url, SHA1: libraryDigest, Size: 13, Path: dest,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFetched, status)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "library-bytes", string(data))
}

func TestEnsure_Idempotent(t *testing.T) {
	var hits atomic.Int64
	s, url := newTestSyncer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("library-bytes"))
	}))
	dest := filepath.Join(t.TempDir(), "asm.jar")
	desc := domain.ArtifactDescriptor{URL: url, SHA1: libraryDigest, Size: 13, Path: dest}

	status, err := s.Ensure(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFetched, status)

	// A second call with a valid on-disk file performs no network fetch.
	status, err = s.Ensure(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAlreadyValid, status)
	assert.Equal(t, int64(1), hits.Load())
}

func TestEnsure_RefetchesCorruptFile(t *testing.T) {
	s, url := newTestSyncer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("library-bytes"))
	}))
	dest := filepath.Join(t.TempDir(), "asm.jar")
	desc := domain.ArtifactDescriptor{URL: url, SHA1: libraryDigest, Size: 13, Path: dest}

	_, err := s.Ensure(context.Background(), desc)
	require.NoError(t, err)

	// Mutate the file on disk; the next call must detect the mismatch and
	// re-fetch.
	require.NoError(t, os.WriteFile(dest, []byte("corrupted"), 0o644))

	status, err := s.Ensure(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFetched, status)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "library-bytes", string(data))
}

func TestEnsure_IntegrityFailureNotWritten(t *testing.T) {
	s, url := newTestSyncer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("tampered-bytes"))
	}))
	dest := filepath.Join(t.TempDir(), "asm.jar")

	status, err := s.Ensure(context.Background(), domain.ArtifactDescriptor{
		URL: url, SHA1: libraryDigest, Path: dest,
	})
	require.Error(t, err)
	assert.Equal(t, domain.StatusFailed, status)

	// Corrupt bytes must never reach the destination.
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsure_TransportFailure(t *testing.T) {
	s, url := newTestSyncer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	status, err := s.Ensure(context.Background(), domain.ArtifactDescriptor{
		URL: url, SHA1: libraryDigest, Path: filepath.Join(t.TempDir(), "asm.jar"),
	})
	require.Error(t, err)
	assert.Equal(t, domain.StatusFailed, status)
}

func TestEnsure_LedgerRecordsVerification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("library-bytes"))
	}))
	t.Cleanup(srv.Close)

	tmpDir := t.TempDir()
	ledger, err := cas.NewLedger(filepath.Join(tmpDir, "ledger.json"))
	require.NoError(t, err)

	s := syncer.New(httpfetch.New(), ledger, telemetry.NewNoOp(), testLogger{})
	dest := filepath.Join(tmpDir, "asm.jar")
	desc := domain.ArtifactDescriptor{URL: srv.URL, SHA1: libraryDigest, Size: 13, Path: dest}

	_, err = s.Ensure(context.Background(), desc)
	require.NoError(t, err)

	rec, err := ledger.Get(dest)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, desc.Fingerprint(), rec.Fingerprint)
	assert.Equal(t, int64(13), rec.Size)
}

func TestEnsure_LedgerStaleAfterMutation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("library-bytes"))
	}))
	t.Cleanup(srv.Close)

	tmpDir := t.TempDir()
	ledger, err := cas.NewLedger(filepath.Join(tmpDir, "ledger.json"))
	require.NoError(t, err)

	s := syncer.New(httpfetch.New(), ledger, telemetry.NewNoOp(), testLogger{})
	dest := filepath.Join(tmpDir, "asm.jar")
	desc := domain.ArtifactDescriptor{URL: srv.URL, SHA1: libraryDigest, Size: 13, Path: dest}

	_, err = s.Ensure(context.Background(), desc)
	require.NoError(t, err)

	// A mutation changes the file size, invalidating the ledger fast path
	// and forcing a full check that detects the corruption.
	require.NoError(t, os.WriteFile(dest, []byte("corrupted!"), 0o644))

	status, err := s.Ensure(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFetched, status)
}
