package syncer

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lanternmc/lantern/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"github.com/lanternmc/lantern/internal/adapters/httpfetch"          //nolint:depguard // Wired in engine wiring
	"github.com/lanternmc/lantern/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/lanternmc/lantern/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/lanternmc/lantern/internal/core/ports"
)

// NodeID is the unique identifier for the Syncer engine node.
const NodeID graft.ID = "engine.syncer"

func init() {
	graft.Register(graft.Node[*Syncer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			httpfetch.NodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Syncer, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			ledger, err := graft.Dep[ports.SyncLedger](ctx)
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
			return New(fetcher, ledger, telemetry, log), nil
		},
	})
}
