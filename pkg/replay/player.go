package replay

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/unklstewy/flight-director/pkg/flight"
)

// Player paces a snapshot sequence in real time. Each snapshot is
// delivered through a callback at the configured rate; playback stops
// early when the context is cancelled or the callback returns an error.
type Player struct {
	snapshots []flight.Snapshot
	limiter   *rate.Limiter
}

// NewPlayer creates a player delivering perSecond snapshots per second.
// A non-positive rate falls back to 1/s.
func NewPlayer(snapshots []flight.Snapshot, perSecond float64) *Player {
	if perSecond <= 0 {
		perSecond = 1
	}
	return &Player{
		snapshots: snapshots,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Len returns the number of snapshots in the sequence.
func (p *Player) Len() int {
	return len(p.snapshots)
}

// At returns the snapshot at index i.
func (p *Player) At(i int) flight.Snapshot {
	return p.snapshots[i]
}

// Play delivers every snapshot in order, waiting on the rate limiter
// between deliveries. The callback receives the snapshot index and the
// snapshot itself.
func (p *Player) Play(ctx context.Context, fn func(index int, s flight.Snapshot) error) error {
	for i, s := range p.snapshots {
		if err := p.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("playback interrupted: %w", err)
		}
		if err := fn(i, s); err != nil {
			return err
		}
	}
	return nil
}
