// Package ports defines the core interfaces for the application.
package ports

import "context"

// Fetcher retrieves the full contents of a remote resource. Implementations
// own transport concerns (timeouts, status handling); callers own integrity
// verification of the returned bytes.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch downloads the resource at url and returns its bytes.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
