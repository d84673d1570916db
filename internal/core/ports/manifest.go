package ports

import (
	"context"

	"github.com/lanternmc/lantern/internal/core/domain"
)

// ManifestClient retrieves and decodes the remote version metadata.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestClient interface {
	// VersionManifest fetches the global version listing.
	VersionManifest(ctx context.Context) (*domain.VersionManifest, error)
	// VersionInfo fetches and decodes the per-version document for v.
	VersionInfo(ctx context.Context, v domain.Version) (*domain.VersionInfo, error)
}
