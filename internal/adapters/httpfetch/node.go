package httpfetch

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lanternmc/lantern/internal/core/ports"
)

const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fetcher, error) {
			return New(), nil
		},
	})
}
