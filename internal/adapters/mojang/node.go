package mojang

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lanternmc/lantern/internal/adapters/httpfetch"
	"github.com/lanternmc/lantern/internal/core/ports"
)

const NodeID graft.ID = "adapter.manifest_client"

func init() {
	graft.Register(graft.Node[ports.ManifestClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{httpfetch.NodeID},
		Run: func(ctx context.Context) (ports.ManifestClient, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(fetcher), nil
		},
	})
}
