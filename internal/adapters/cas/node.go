package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lanternmc/lantern/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
)

// NodeID is the unique identifier for the sync ledger node.
const NodeID graft.ID = "adapter.sync_ledger"

func init() {
	graft.Register(graft.Node[ports.SyncLedger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ProfileNodeID},
		Run: func(ctx context.Context) (ports.SyncLedger, error) {
			profile, err := graft.Dep[*domain.Profile](ctx)
			if err != nil {
				return nil, err
			}
			return NewLedger(domain.NewLayout(profile.WorkDir).LedgerPath())
		},
	})
}
