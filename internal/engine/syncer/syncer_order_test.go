package syncer_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/lanternmc/lantern/internal/adapters/telemetry"
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports/mocks"
	"github.com/lanternmc/lantern/internal/engine/syncer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// sha1 digests of "aaa", "bbb", "ccc"
var orderDigests = map[string]string{
	"aaa": "7e240de74fb1ed08fa08d38063f6a6a91462a815",
	"bbb": "5cb138284d431abd6a053a56625ec088bfb88912",
	"ccc": "f36b4825e5db2cf7dd2d2593b3f5c24c0311d8b2",
}

func TestSyncAll_OrderPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := t.TempDir()
	mockFetcher := mocks.NewMockFetcher(ctrl)

	// Completion order is deliberately reversed: the first descriptor's
	// fetch is the slowest. Results must still come back in input order.
	delays := map[string]time.Duration{
		"https://store/aaa": 30 * time.Millisecond,
		"https://store/bbb": 15 * time.Millisecond,
		"https://store/ccc": 0,
	}
	mockFetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, url string) ([]byte, error) {
			time.Sleep(delays[url])
			return []byte(filepath.Base(url)), nil
		},
	).Times(3)

	s := syncer.New(mockFetcher, nil, telemetry.NewNoOp(), testLogger{})

	var descs []domain.ArtifactDescriptor
	for _, content := range []string{"aaa", "bbb", "ccc"} {
		descs = append(descs, domain.ArtifactDescriptor{
			URL:  "https://store/" + content,
			SHA1: orderDigests[content],
			Size: 3,
			Path: filepath.Join(tmpDir, content),
		})
	}

	results := s.SyncAll(context.Background(), descs, 3)

	require.Len(t, results, 3)
	for i, res := range results {
		assert.Equal(t, descs[i].URL, res.Descriptor.URL, "result %d out of order", i)
		assert.NoError(t, res.Err)
		assert.Equal(t, domain.StatusFetched, res.Status)
	}
}

func TestSyncAll_NoShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := t.TempDir()
	mockFetcher := mocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, url string) ([]byte, error) {
			if url == "https://store/bbb" {
				return nil, fmt.Errorf("connection reset")
			}
			return []byte(filepath.Base(url)), nil
		},
	).Times(3)

	s := syncer.New(mockFetcher, nil, telemetry.NewNoOp(), testLogger{})

	var descs []domain.ArtifactDescriptor
	for _, content := range []string{"aaa", "bbb", "ccc"} {
		descs = append(descs, domain.ArtifactDescriptor{
			URL:  "https://store/" + content,
			SHA1: orderDigests[content],
			Size: 3,
			Path: filepath.Join(tmpDir, content),
		})
	}

	// Concurrency of 1 serializes the batch: a failure in the middle must
	// not stop the remaining items.
	results := s.SyncAll(context.Background(), descs, 1)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Equal(t, domain.StatusFailed, results[1].Status)
	assert.NoError(t, results[2].Err)
}

func TestSyncAll_Empty(t *testing.T) {
	s := syncer.New(nil, nil, telemetry.NewNoOp(), testLogger{})
	results := s.SyncAll(context.Background(), nil, 4)
	assert.Empty(t, results)
}

func TestFirstFailure(t *testing.T) {
	ok := domain.SyncResult{Status: domain.StatusFetched}
	bad := domain.SyncResult{
		Descriptor: domain.ArtifactDescriptor{Path: "libraries/asm.jar"},
		Status:     domain.StatusFailed,
		Err:        fmt.Errorf("boom"),
	}

	assert.NoError(t, syncer.FirstFailure([]domain.SyncResult{ok, ok}))
	assert.Error(t, syncer.FirstFailure([]domain.SyncResult{ok, bad, ok}))
}
