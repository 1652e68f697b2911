package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "product id (required)")
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" {
		return fmt.Errorf("missing product id. Usage: tiendasync delete --id ID [--yes]")
	}

	p, ok := findByID(c.engine.Snapshot(), *id)
	if !ok {
		return fmt.Errorf("product %s not found in local catalog", *id)
	}

	if !*yes {
		answer, err := c.io.ReadInput(fmt.Sprintf("Delete %q? [y/N]: ", p.Nombre))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	c.engine.DeleteLocal(ctx, *id)

	c.io.Printf("Deleted %q (id %s)\n", p.Nombre, p.ID)
	c.reportPending(ctx)

	return nil
}
