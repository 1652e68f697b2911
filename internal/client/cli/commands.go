package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "list":
		err = c.runList(ctx, args)
	case "add":
		err = c.runAdd(ctx, args)
	case "set":
		err = c.runSet(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	case "find":
		err = c.runFind(ctx, args)
	case "sync":
		err = c.runSync(ctx)
	case "status":
		err = c.runStatus(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
