package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	c.io.Printf("Local catalog: %d product(s)\n", len(c.engine.Snapshot()))

	if lastSync := c.engine.LastSync(ctx); lastSync > 0 {
		c.io.Printf("Last sync: %s\n", time.UnixMilli(lastSync).Format(time.RFC3339))
	} else {
		c.io.Println("Last sync: never")
	}

	pending := c.engine.PendingCount(ctx)
	c.io.Println()
	if pending > 0 {
		c.io.Printf("⚠ Pending sync: %d change(s) waiting to be delivered\n", pending)
		c.io.Println("Run 'tiendasync sync' to synchronize with server.")
	} else {
		c.io.Println("✓ All data synchronized with server")
	}

	return nil
}
