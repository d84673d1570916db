package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the profile loader node.
	NodeID graft.ID = "adapter.config_loader"
	// ProfileNodeID is the unique identifier for the loaded profile node.
	ProfileNodeID graft.ID = "adapter.config_profile"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.Profile]{
		ID:        ProfileNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Profile, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load(".")
		},
	})
}
