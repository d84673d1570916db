package app_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/lanternmc/lantern/internal/adapters/telemetry"
	"github.com/lanternmc/lantern/internal/app"
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports/mocks"
	"github.com/lanternmc/lantern/internal/engine/launchargs"
	"github.com/lanternmc/lantern/internal/engine/syncer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	libraryURL   = "https://libraries.example.test/org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar"
	clientJarURL = "https://piston-data.example.test/v1/objects/client.jar"
	indexURL     = "https://piston-meta.example.test/v1/packages/17.json"

	// sha1 digests of the fixture payloads below
	libraryDigest   = "6ac178e3637abb0b8e09c8eca5214c79549c5528"
	clientJarDigest = "1ab8bae4511fe77dd464ca455a15a2c42dac53de"
	assetDigest     = "a4b45e57b3934836f20ccf8529c18bcd1e120129"

	assetIndexJSON   = `{"objects":{"minecraft/sounds/random/click.ogg":{"hash":"a4b45e57b3934836f20ccf8529c18bcd1e120129","size":11}}}`
	assetIndexDigest = "6b8c051ad4a4999031c6a7619b32763bc0bffdce"
)

type testLogger struct{}

func (testLogger) Info(string) {}
func (testLogger) Warn(string) {}
func (testLogger) Error(error) {}

func testVersionInfo() *domain.VersionInfo {
	return &domain.VersionInfo{
		ID:        "1.21",
		Type:      "release",
		MainClass: "net.minecraft.client.main.Main",
		AssetIndex: domain.AssetIndexRef{
			ID: "17",
			Info: domain.FileInfo{
				SHA1: assetIndexDigest,
				Size: int64(len(assetIndexJSON)),
				URL:  indexURL,
			},
		},
		ClientJar: domain.FileInfo{
			SHA1: clientJarDigest,
			Size: 16,
			URL:  clientJarURL,
		},
		Libraries: []domain.Library{{
			Name: "org.lwjgl:lwjgl:3.3.3",
			Artifact: domain.LibraryArtifact{
				Path: "org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar",
				Info: domain.FileInfo{SHA1: libraryDigest, Size: 13, URL: libraryURL},
			},
		}},
		JVMArgs: []domain.Argument{
			domain.LiteralArgument("-cp"),
			domain.LiteralArgument("${classpath}"),
		},
		GameArgs: []domain.Argument{
			domain.LiteralArgument("--version"),
			domain.LiteralArgument("${version_name}"),
			domain.GuardedArgument(
				[]domain.Rule{{
					Action:   domain.ActionAllow,
					Features: map[string]bool{"is_demo_user": true},
				}},
				[]string{"--demo"},
			),
		},
	}
}

func testProfile(t *testing.T) *domain.Profile {
	t.Helper()
	return &domain.Profile{
		VersionID:   "1.21",
		Channel:     domain.ChannelRelease,
		WorkDir:     t.TempDir(),
		JavaBin:     "java",
		PlayerName:  "steve",
		PlayerUUID:  "00000000-0000-0000-0000-000000000001",
		UserType:    "msa",
		Platform:    domain.Platform{Name: "linux", Arch: "x86_64"},
		Parallelism: 2,
	}
}

func expectFullSync(manifest *mocks.MockManifestClient, fetcher *mocks.MockFetcher) {
	manifest.EXPECT().VersionManifest(gomock.Any()).Return(&domain.VersionManifest{
		LatestRelease: "1.21",
		Versions:      []domain.Version{{ID: "1.21", Type: "release"}},
	}, nil)
	manifest.EXPECT().
		VersionInfo(gomock.Any(), domain.Version{ID: "1.21", Type: "release"}).
		Return(testVersionInfo(), nil)

	fetcher.EXPECT().Fetch(gomock.Any(), libraryURL).Return([]byte("library-bytes"), nil)
	fetcher.EXPECT().Fetch(gomock.Any(), clientJarURL).Return([]byte("client-jar-bytes"), nil)
	fetcher.EXPECT().Fetch(gomock.Any(), indexURL).Return([]byte(assetIndexJSON), nil)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "https://resources.download.minecraft.net/a4/"+assetDigest).
		Return([]byte("asset-bytes"), nil)
}

func newApp(manifest *mocks.MockManifestClient, fetcher *mocks.MockFetcher, executor *mocks.MockExecutor) *app.App {
	sync := syncer.New(fetcher, nil, telemetry.NewNoOp(), testLogger{})
	resolver := launchargs.NewResolver(testLogger{})
	return app.New(manifest, sync, resolver, executor, telemetry.NewNoOp(), testLogger{})
}

func TestApp_Launch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifest := mocks.NewMockManifestClient(ctrl)
	fetcher := mocks.NewMockFetcher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	expectFullSync(manifest, fetcher)

	profile := testProfile(t)
	layout := domain.NewLayout(profile.WorkDir)

	var got domain.LaunchSpec
	executor.EXPECT().
		Launch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec domain.LaunchSpec) error {
			got = spec
			return nil
		})

	err := newApp(manifest, fetcher, executor).Launch(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, "java", got.JavaBin)
	assert.Equal(t, "net.minecraft.client.main.Main", got.MainClass)
	assert.Equal(t, layout.GameDir(), got.WorkDir)
	assert.Equal(t, []string{"--version", "1.21"}, got.GameArgs)

	require.Len(t, got.JVMArgs, 2)
	assert.Equal(t, "-cp", got.JVMArgs[0])
	cp := strings.Split(got.JVMArgs[1], string(os.PathListSeparator))
	assert.Equal(t, []string{
		layout.LibraryPath("org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar"),
		layout.ClientJarPath("1.21"),
	}, cp)

	for _, path := range []string{
		layout.LibraryPath("org/lwjgl/lwjgl/3.3.3/lwjgl-3.3.3.jar"),
		layout.ClientJarPath("1.21"),
		layout.AssetIndexPath("17"),
		layout.AssetObjectPath(assetDigest),
	} {
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, path)
	}

	_, statErr := os.Stat(layout.GameDir())
	assert.NoError(t, statErr)
}

func TestApp_Launch_VersionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifest := mocks.NewMockManifestClient(ctrl)
	fetcher := mocks.NewMockFetcher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)

	manifest.EXPECT().VersionManifest(gomock.Any()).Return(&domain.VersionManifest{
		LatestRelease: "1.21",
		Versions:      []domain.Version{{ID: "1.21", Type: "release"}},
	}, nil)

	profile := testProfile(t)
	profile.VersionID = "9.9.9"

	err := newApp(manifest, fetcher, executor).Launch(context.Background(), profile)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestApp_Launch_SyncFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifest := mocks.NewMockManifestClient(ctrl)
	fetcher := mocks.NewMockFetcher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)

	manifest.EXPECT().VersionManifest(gomock.Any()).Return(&domain.VersionManifest{
		LatestRelease: "1.21",
		Versions:      []domain.Version{{ID: "1.21", Type: "release"}},
	}, nil)
	manifest.EXPECT().
		VersionInfo(gomock.Any(), gomock.Any()).
		Return(testVersionInfo(), nil)

	// Corrupt library bytes fail verification; the rest of the batch still
	// completes before the run is aborted.
	fetcher.EXPECT().Fetch(gomock.Any(), libraryURL).Return([]byte("corrupted"), nil)
	fetcher.EXPECT().Fetch(gomock.Any(), clientJarURL).Return([]byte("client-jar-bytes"), nil)

	err := newApp(manifest, fetcher, executor).Launch(context.Background(), testProfile(t))
	require.Error(t, err)
	assert.ErrorContains(t, err, "artifact synchronization failed")
}

func TestApp_Sync_DoesNotLaunch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifest := mocks.NewMockManifestClient(ctrl)
	fetcher := mocks.NewMockFetcher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	expectFullSync(manifest, fetcher)

	err := newApp(manifest, fetcher, executor).Sync(context.Background(), testProfile(t))
	require.NoError(t, err)
}

func TestApp_Launch_FiltersLibrariesByPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifest := mocks.NewMockManifestClient(ctrl)
	fetcher := mocks.NewMockFetcher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)

	osx := "osx"
	info := testVersionInfo()
	info.Libraries = append(info.Libraries, domain.Library{
		Name: "ca.weblite:java-objc-bridge:1.1",
		Artifact: domain.LibraryArtifact{
			Path: "ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar",
			Info: domain.FileInfo{
				SHA1: "0000000000000000000000000000000000000000",
				Size: 1,
				URL:  "https://libraries.example.test/ca/weblite/java-objc-bridge-1.1.jar",
			},
		},
		Rules: []domain.Rule{{
			Action: domain.ActionAllow,
			OS:     &domain.OSConstraint{Name: &osx},
		}},
	})

	manifest.EXPECT().VersionManifest(gomock.Any()).Return(&domain.VersionManifest{
		LatestRelease: "1.21",
		Versions:      []domain.Version{{ID: "1.21", Type: "release"}},
	}, nil)
	manifest.EXPECT().VersionInfo(gomock.Any(), gomock.Any()).Return(info, nil)

	// The osx-only library must never be fetched on linux.
	fetcher.EXPECT().Fetch(gomock.Any(), libraryURL).Return([]byte("library-bytes"), nil)
	fetcher.EXPECT().Fetch(gomock.Any(), clientJarURL).Return([]byte("client-jar-bytes"), nil)
	fetcher.EXPECT().Fetch(gomock.Any(), indexURL).Return([]byte(assetIndexJSON), nil)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "https://resources.download.minecraft.net/a4/"+assetDigest).
		Return([]byte("asset-bytes"), nil)

	var got domain.LaunchSpec
	executor.EXPECT().
		Launch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec domain.LaunchSpec) error {
			got = spec
			return nil
		})

	profile := testProfile(t)
	err := newApp(manifest, fetcher, executor).Launch(context.Background(), profile)
	require.NoError(t, err)
	assert.NotContains(t, got.JVMArgs[1], "java-objc-bridge")
}

func TestApp_Sync_FollowsChannelWhenUnpinned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifest := mocks.NewMockManifestClient(ctrl)
	fetcher := mocks.NewMockFetcher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)

	manifest.EXPECT().VersionManifest(gomock.Any()).Return(&domain.VersionManifest{
		LatestRelease:  "1.21",
		LatestSnapshot: "24w38a",
		Versions: []domain.Version{
			{ID: "24w38a", Type: "snapshot"},
			{ID: "1.21", Type: "release"},
		},
	}, nil)
	manifest.EXPECT().
		VersionInfo(gomock.Any(), domain.Version{ID: "24w38a", Type: "snapshot"}).
		Return(nil, assert.AnError)

	profile := testProfile(t)
	profile.VersionID = ""
	profile.Channel = domain.ChannelSnapshot

	err := newApp(manifest, fetcher, executor).Sync(context.Background(), profile)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
