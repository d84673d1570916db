// Package mojang implements the version metadata client for the piston-meta
// service.
package mojang

import (
	"context"
	"encoding/json"

	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultManifestURL is the published location of the global version
	// manifest.
	DefaultManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

	// DefaultResourceBaseURL is the content-addressed asset store; objects
	// live at <base>/<hash[:2]>/<hash>.
	DefaultResourceBaseURL = "https://resources.download.minecraft.net"
)

// Client implements ports.ManifestClient on top of a Fetcher.
type Client struct {
	fetcher     ports.Fetcher
	manifestURL string
}

// NewClient creates a Client against the default manifest location.
func NewClient(fetcher ports.Fetcher) *Client {
	return &Client{fetcher: fetcher, manifestURL: DefaultManifestURL}
}

// NewClientWithURL creates a Client against a custom manifest location.
func NewClientWithURL(fetcher ports.Fetcher, manifestURL string) *Client {
	return &Client{fetcher: fetcher, manifestURL: manifestURL}
}

// VersionManifest fetches and decodes the global version listing.
func (c *Client) VersionManifest(ctx context.Context) (*domain.VersionManifest, error) {
	data, err := c.fetcher.Fetch(ctx, c.manifestURL)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch version manifest")
	}

	var dto versionManifestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse version manifest")
	}

	return dto.toDomain(), nil
}

// VersionInfo fetches and decodes the per-version document for v.
func (c *Client) VersionInfo(ctx context.Context, v domain.Version) (*domain.VersionInfo, error) {
	data, err := c.fetcher.Fetch(ctx, v.URL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to fetch version info"), "version", v.ID)
	}

	var dto versionInfoDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse version info"), "version", v.ID)
	}

	return dto.toDomain()
}

// AssetObjectURL returns the download location of a content-addressed asset.
func AssetObjectURL(base, hash string) string {
	return base + "/" + hash[:2] + "/" + hash
}
