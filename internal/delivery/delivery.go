// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
type Delivery interface {
	// Serve blocks, accepting requests until the context ends or the
	// application shuts the server down.
	Serve(ctx context.Context) error
}
