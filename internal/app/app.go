// Package app implements the application layer for lantern.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lanternmc/lantern/internal/adapters/mojang"
	"github.com/lanternmc/lantern/internal/build"
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
	"github.com/lanternmc/lantern/internal/engine/launchargs"
	"github.com/lanternmc/lantern/internal/engine/syncer"
	"go.trai.ch/zerr"
)

// App drives a full launcher run: resolve the configured version, bring its
// artifacts up to date on disk, resolve the argument grammars and start the
// game.
type App struct {
	manifest  ports.ManifestClient
	syncer    *syncer.Syncer
	resolver  *launchargs.Resolver
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger

	resourceBaseURL string
}

// New creates a new App instance.
func New(
	manifest ports.ManifestClient,
	sync *syncer.Syncer,
	resolver *launchargs.Resolver,
	executor ports.Executor,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		manifest:        manifest,
		syncer:          sync,
		resolver:        resolver,
		executor:        executor,
		telemetry:       telemetry,
		logger:          logger,
		resourceBaseURL: mojang.DefaultResourceBaseURL,
	}
}

// WithResourceBaseURL overrides the asset object store location. Used for
// testing against a local server.
func (a *App) WithResourceBaseURL(base string) *App {
	a.resourceBaseURL = base
	return a
}

// Sync materializes every artifact of the configured version without
// starting the game.
func (a *App) Sync(ctx context.Context, profile *domain.Profile) error {
	_, err := a.prepare(ctx, profile)
	return err
}

// Launch materializes every artifact of the configured version and starts
// the game process, waiting for it to exit.
func (a *App) Launch(ctx context.Context, profile *domain.Profile) error {
	spec, err := a.prepare(ctx, profile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(spec.WorkDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create game directory")
	}

	a.logger.Info(fmt.Sprintf("launching %s %s", spec.JavaBin, spec.MainClass))
	return a.executor.Launch(ctx, *spec)
}

// prepare runs the sync pipeline and returns the fully resolved launch spec.
func (a *App) prepare(ctx context.Context, profile *domain.Profile) (*domain.LaunchSpec, error) {
	version, err := a.resolveVersion(ctx, profile)
	if err != nil {
		return nil, err
	}

	info, err := a.manifest.VersionInfo(ctx, version)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load version metadata")
	}

	root, err := filepath.Abs(profile.WorkDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve work directory")
	}
	layout := domain.NewLayout(root)

	platform := profile.EffectivePlatform()
	features := domain.NewFeatureSet(profile.Features)

	libs := activeLibraries(info.Libraries, platform, features)

	descs := make([]domain.ArtifactDescriptor, 0, len(libs)+1)
	for _, lib := range libs {
		descs = append(descs, domain.ArtifactDescriptor{
			URL:  lib.Artifact.Info.URL,
			SHA1: lib.Artifact.Info.SHA1,
			Size: lib.Artifact.Info.Size,
			Path: layout.LibraryPath(lib.Artifact.Path),
		})
	}
	descs = append(descs, domain.ArtifactDescriptor{
		URL:  info.ClientJar.URL,
		SHA1: info.ClientJar.SHA1,
		Size: info.ClientJar.Size,
		Path: layout.ClientJarPath(info.ID),
	})

	parallelism := profile.EffectiveParallelism()

	results := a.syncer.SyncAll(ctx, descs, parallelism)
	if err := syncer.FirstFailure(results); err != nil {
		return nil, err
	}

	index, err := a.syncAssets(ctx, info.AssetIndex, layout, parallelism)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf(
		"version %s ready: %d libraries, %d assets", info.ID, len(libs), len(index.Objects),
	))

	// Recording ends with the sync phase. The game's own output goes to the
	// logger, not the progress display.
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
	}

	query := launchargs.Query{
		Constants: a.buildConstants(profile, info, layout, libs),
		Features:  features,
		Platform:  platform,
	}

	return &domain.LaunchSpec{
		JavaBin:   profile.JavaBin,
		JVMArgs:   a.resolver.Resolve(info.JVMArgs, query),
		MainClass: info.MainClass,
		GameArgs:  a.resolver.Resolve(info.GameArgs, query),
		WorkDir:   layout.GameDir(),
	}, nil
}

// resolveVersion picks the version entry for the profile: the pinned id when
// set, otherwise the manifest's latest pointer for the configured channel.
func (a *App) resolveVersion(ctx context.Context, profile *domain.Profile) (domain.Version, error) {
	manifest, err := a.manifest.VersionManifest(ctx)
	if err != nil {
		return domain.Version{}, zerr.Wrap(err, "failed to load version manifest")
	}

	id := profile.VersionID
	if id == "" {
		switch profile.Channel {
		case domain.ChannelSnapshot:
			id = manifest.LatestSnapshot
		default:
			id = manifest.LatestRelease
		}
	}

	v, ok := manifest.FindVersion(id)
	if !ok {
		return domain.Version{}, zerr.With(domain.ErrVersionNotFound, "version", id)
	}
	return v, nil
}

// syncAssets materializes the asset index document, decodes it and syncs
// every referenced object into the content-addressed store.
func (a *App) syncAssets(
	ctx context.Context,
	ref domain.AssetIndexRef,
	layout domain.Layout,
	parallelism int,
) (*domain.AssetIndex, error) {
	indexPath := layout.AssetIndexPath(ref.ID)
	if _, err := a.syncer.Ensure(ctx, domain.ArtifactDescriptor{
		URL:  ref.Info.URL,
		SHA1: ref.Info.SHA1,
		Size: ref.Info.Size,
		Path: indexPath,
	}); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSyncFailed.Error()), "path", indexPath)
	}

	//nolint:gosec // Path is derived from the layout root
	data, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read asset index")
	}

	index, err := mojang.ParseAssetIndex(data)
	if err != nil {
		return nil, err
	}

	// Objects are content addressed: distinct names can share bytes.
	seen := make(map[string]struct{}, len(index.Objects))
	descs := make([]domain.ArtifactDescriptor, 0, len(index.Objects))
	for _, obj := range index.Objects {
		if _, ok := seen[obj.Hash]; ok {
			continue
		}
		seen[obj.Hash] = struct{}{}
		descs = append(descs, domain.ArtifactDescriptor{
			URL:  mojang.AssetObjectURL(a.resourceBaseURL, obj.Hash),
			SHA1: obj.Hash,
			Size: obj.Size,
			Path: layout.AssetObjectPath(obj.Hash),
		})
	}

	results := a.syncer.SyncAll(ctx, descs, parallelism)
	if err := syncer.FirstFailure(results); err != nil {
		return nil, err
	}
	return index, nil
}

// buildConstants assembles the placeholder table both argument grammars are
// resolved against. Auth related values are blank: there is no account
// integration, the game runs with an empty token.
func (a *App) buildConstants(
	profile *domain.Profile,
	info *domain.VersionInfo,
	layout domain.Layout,
	libs []domain.Library,
) domain.Constants {
	return domain.Constants{
		"auth_player_name":  profile.PlayerName,
		"auth_uuid":         profile.PlayerUUID,
		"auth_access_token": "",
		"auth_xuid":         "",
		"clientid":          "",
		"user_type":         profile.UserType,
		"version_name":      info.ID,
		"version_type":      info.Type,
		"game_directory":    layout.GameDir(),
		"assets_root":       layout.AssetsDir(),
		"assets_index_name": info.AssetIndex.ID,
		"natives_directory": layout.NativesDir(),
		"launcher_name":     "lantern",
		"launcher_version":  build.Version,
		"classpath":         classpath(libs, info.ID, layout),
	}
}

// activeLibraries filters the version's libraries down to those whose rules
// match the current platform and features and that carry a downloadable
// artifact.
func activeLibraries(libs []domain.Library, platform domain.Platform, features domain.FeatureSet) []domain.Library {
	out := make([]domain.Library, 0, len(libs))
	for _, lib := range libs {
		if lib.Artifact.Path == "" {
			continue
		}
		if !domain.RulesMatch(lib.Rules, platform, features) {
			continue
		}
		out = append(out, lib)
	}
	return out
}

// classpath joins the active library jars and the client jar with the
// platform's path list separator, in manifest order.
func classpath(libs []domain.Library, versionID string, layout domain.Layout) string {
	parts := make([]string, 0, len(libs)+1)
	for _, lib := range libs {
		parts = append(parts, layout.LibraryPath(lib.Artifact.Path))
	}
	parts = append(parts, layout.ClientJarPath(versionID))
	return strings.Join(parts, string(os.PathListSeparator))
}
