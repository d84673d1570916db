package app

import (
	"github.com/lanternmc/lantern/internal/adapters/telemetry/progrock"
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App     *App
	Logger  ports.Logger
	Profile *domain.Profile

	// Telemetry records artifact syncs; the CLI closes it when a run ends
	// so the progress stream terminates.
	Telemetry ports.Telemetry
	// Progress feeds recorded updates to the progress TUI.
	Progress *progrock.Stream
}
