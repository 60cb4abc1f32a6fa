// Package latency provides the injectable delay capability used to emulate
// the network round-trips of the vendor services this server simulates.
package latency

import (
	"context"
	"time"
)

// Sleeper suspends the calling operation for d, honoring context
// cancellation. Services take a Sleeper so tests can run with zero delay.
type Sleeper func(ctx context.Context, d time.Duration) error

// Wait is the production Sleeper.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// None skips the delay entirely. Intended for tests and for deployments
// that disable latency simulation.
func None(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
