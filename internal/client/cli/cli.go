package cli

import (
	"fmt"

	"github.com/jrenteria/tiendasync/internal/client/api"
	"github.com/jrenteria/tiendasync/internal/client/iocli"
	"github.com/jrenteria/tiendasync/internal/client/sync"
)

// Cli связывает команды точки продаж с движком синхронизации.
// Все мутации local-first: выполняются мгновенно против локального
// каталога и доезжают до сервера фоновой синхронизацией.
type Cli struct {
	engine     *sync.Engine
	apiClient  *api.Client
	io         iocli.IO
	collection string
}

func New(engine *sync.Engine, apiClient *api.Client, io iocli.IO, collection string) *Cli {
	return &Cli{
		engine:     engine,
		apiClient:  apiClient,
		io:         io,
		collection: collection,
	}
}

func PrintUsage() {
	fmt.Println("TiendaSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tiendasync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --server URL         Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH            Path to local database (default: tiendasync-client.db)")
	fmt.Println("  --token TOKEN        Bearer token (or TIENDASYNC_TOKEN env var)")
	fmt.Println("  --offline            Start without network (work from local cache)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  list                 List products (paged, filtered, sorted)")
	fmt.Println("  add                  Add a new product")
	fmt.Println("  set                  Update fields of an existing product")
	fmt.Println("  delete               Delete a product")
	fmt.Println("  find                 Look up a product on the server by barcode")
	fmt.Println("  sync                 Force a sync cycle (drain queue + pull deltas)")
	fmt.Println("  status               Show pending queue and last sync time")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tiendasync list --filter arroz --sort pvp --dir desc --page 0 --size 10")
	fmt.Println("  tiendasync add --nombre 'Arroz 1kg' --codigo 7501031311309 --pvp 1.85 --stock 24")
	fmt.Println("  tiendasync set --id b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 --stock 12")
	fmt.Println("  tiendasync delete --id b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 --yes")
	fmt.Println("  tiendasync find --codigo 7501031311309")
	fmt.Println("  tiendasync --offline add --nombre 'Atún lata' --codigo 7501031311310")
}
