// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/lanternmc/lantern/internal/adapters/cas"
	_ "github.com/lanternmc/lantern/internal/adapters/config"
	_ "github.com/lanternmc/lantern/internal/adapters/httpfetch"
	_ "github.com/lanternmc/lantern/internal/adapters/logger"
	_ "github.com/lanternmc/lantern/internal/adapters/mojang"
	_ "github.com/lanternmc/lantern/internal/adapters/shell"
	_ "github.com/lanternmc/lantern/internal/adapters/telemetry/progrock"

	// Register app and engine nodes.
	_ "github.com/lanternmc/lantern/internal/app"
	_ "github.com/lanternmc/lantern/internal/engine/launchargs"
	_ "github.com/lanternmc/lantern/internal/engine/syncer"
)
