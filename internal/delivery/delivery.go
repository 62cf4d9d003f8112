// Package delivery defines the contract shared by the serving surfaces.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP API, worker).
// Each implementation blocks in Serve until shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
