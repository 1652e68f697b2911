package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jrenteria/tiendasync/internal/client/api"
	"github.com/jrenteria/tiendasync/internal/client/cli"
	"github.com/jrenteria/tiendasync/internal/client/iocli"
	"github.com/jrenteria/tiendasync/internal/client/storage/boltdb"
	"github.com/jrenteria/tiendasync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const collection = "productos"

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "tiendasync-client.db", "Path to local database")
	token := flag.String("token", "", "Bearer token (or TIENDASYNC_TOKEN env var)")
	offline := flag.Bool("offline", false, "Start without network (work from local cache)")
	verbose := flag.Bool("verbose", false, "Log engine internals to stderr")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	if *token == "" {
		*token = os.Getenv("TIENDASYNC_TOKEN")
	}

	// Движок шумный; в интерактивной сессии его логи прячем
	logOutput := io.Discard
	if *verbose {
		logOutput = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOutput, nil))

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL, *token)

	engine := sync.NewEngine(apiClient, boltStorage, collection, logger)
	engine.SetOnline(!*offline)
	engine.Init(ctx)

	c := cli.New(engine, apiClient, iocli.NewStdio(), collection)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("TiendaSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
