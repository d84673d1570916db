package ports

import (
	"context"

	"github.com/lanternmc/lantern/internal/core/domain"
)

// Executor defines the interface for starting the game process.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Launch starts the process described by spec and waits for it to
	// exit. It returns an error if the process could not be started or
	// exited unsuccessfully.
	Launch(ctx context.Context, spec domain.LaunchSpec) error
}
