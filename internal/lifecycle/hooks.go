// Package lifecycle runs named teardown hooks when the process stops.
package lifecycle

import "context"

// Hook is one named piece of teardown work.
type Hook struct {
	Name string
	Fn   func(ctx context.Context) error
}
