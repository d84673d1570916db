package ports

import "github.com/lanternmc/lantern/internal/core/domain"

// ConfigLoader defines the interface for loading the launcher profile.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the profile from the given working directory.
	Load(cwd string) (*domain.Profile, error)
}
