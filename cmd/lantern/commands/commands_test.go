package commands_test

import (
	"context"
	"testing"

	"github.com/lanternmc/lantern/cmd/lantern/commands"
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

type testLogger struct{}

func (testLogger) Info(string) {}
func (testLogger) Warn(string) {}
func (testLogger) Error(error) {}

func newCLI(t *testing.T, manifest *mocks.MockManifestClient) *commands.CLI {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	fetcher := mocks.NewMockFetcher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	sync := syncer.New(fetcher, nil, telemetry.NewNoOp(), testLogger{})
	resolver := launchargs.NewResolver(testLogger{})

	return commands.New(&app.Components{
		App:    app.New(manifest, sync, resolver, executor, telemetry.NewNoOp(), testLogger{}),
		Logger: testLogger{},
		Profile: &domain.Profile{
			VersionID: "1.21",
			Channel:   domain.ChannelRelease,
			WorkDir:   t.TempDir(),
			JavaBin:   "java",
		},
	})
}

func TestLaunch_VersionArgOverridesProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifest := mocks.NewMockManifestClient(ctrl)
	manifest.EXPECT().VersionManifest(gomock.Any()).Return(&domain.VersionManifest{
		LatestRelease: "1.21",
		Versions:      []domain.Version{{ID: "1.21", Type: "release"}},
	}, nil)

	cli := newCLI(t, manifest)
	cli.SetArgs([]string{"launch", "9.9.9"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestSync_ManifestErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manifest := mocks.NewMockManifestClient(ctrl)
	manifest.EXPECT().VersionManifest(gomock.Any()).Return(nil, assert.AnError)

	cli := newCLI(t, manifest)
	cli.SetArgs([]string{"sync"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := newCLI(t, mocks.NewMockManifestClient(ctrl))
	cli.SetArgs([]string{"--help"})

	assert.NoError(t, cli.Execute(context.Background()))
}
