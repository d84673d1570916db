package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lanternmc/lantern/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/lanternmc/lantern/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/lanternmc/lantern/internal/adapters/mojang"             //nolint:depguard // Wired in app layer
	"github.com/lanternmc/lantern/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"github.com/lanternmc/lantern/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
	"github.com/lanternmc/lantern/internal/engine/launchargs"
	"github.com/lanternmc/lantern/internal/engine/syncer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			mojang.NodeID,
			syncer.NodeID,
			launchargs.NodeID,
			shell.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manifest, err := graft.Dep[ports.ManifestClient](ctx)
			if err != nil {
				return nil, err
			}

			sync, err := graft.Dep[*syncer.Syncer](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*launchargs.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manifest, sync, resolver, executor, telemetry, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ProfileNodeID,
			progrock.NodeID,
			progrock.StreamNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	profile, err := graft.Dep[*domain.Profile](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	stream, err := graft.Dep[*progrock.Stream](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Profile:   profile,
		Telemetry: telemetry,
		Progress:  stream,
	}, nil
}
