package cli

import (
	"context"
)

func (c *Cli) runSync(ctx context.Context) error {
	before := c.engine.PendingCount(ctx)

	c.engine.TrySync(ctx)

	after := c.engine.PendingCount(ctx)
	delivered := before - after

	if delivered > 0 {
		c.io.Printf("Delivered %d queued change(s)\n", delivered)
	}
	if after > 0 {
		c.io.Printf("⚠ %d change(s) still pending (server unreachable?)\n", after)
	} else {
		c.io.Println("✓ All data synchronized with server")
	}

	return nil
}
