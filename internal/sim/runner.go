package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run ticks the entity every interval until ctx is cancelled or, when
// ticks > 0, until that many ticks were processed.
// Returns ctx.Err() on cancellation and nil on completion.
func (e *Entity) Run(ctx context.Context, interval time.Duration, ticks int) error {
	if interval <= 0 {
		return fmt.Errorf("entity %s: invalid tick interval %s", e.name, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("entity tick loop started",
		"entity", e.name,
		"interval", interval,
		"ticks", ticks)

	done := 0
	for {
		select {
		case <-ctx.Done():
			slog.Info("entity tick loop stopping", "entity", e.name, "ticks", done)
			return ctx.Err()

		case <-ticker.C:
			e.Tick()
			done++
			if ticks > 0 && done >= ticks {
				slog.Info("entity tick loop finished", "entity", e.name, "ticks", done)
				return nil
			}
		}
	}
}

// RunAll runs every entity in its own goroutine.
// The first error cancels the others and is returned.
func RunAll(ctx context.Context, entities []*Entity, interval time.Duration, ticks int) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, ent := range entities {
		ent := ent
		g.Go(func() error {
			if err := ent.Run(gctx, interval, ticks); err != nil {
				return fmt.Errorf("entity %s: %w", ent.name, err)
			}
			return nil
		})
	}

	return g.Wait()
}
