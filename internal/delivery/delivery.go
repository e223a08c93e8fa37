// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server here) whose lifetime
// is managed by the application container.
type Delivery interface {
	// Serve blocks until the transport stops or the context is canceled.
	Serve(ctx context.Context) error
}
