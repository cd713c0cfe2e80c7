// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface bound into the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
