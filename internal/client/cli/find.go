package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/jrenteria/tiendasync/internal/client/api"
	"github.com/jrenteria/tiendasync/internal/models"
)

// runFind ищет товар по штрих-коду напрямую на сервере — путь сканера
// на кассе, когда товара ещё нет в локальном кэше
func (c *Cli) runFind(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	codigo := fs.String("codigo", "", "barcode (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *codigo == "" {
		return fmt.Errorf("missing barcode. Usage: tiendasync find --codigo BARCODE")
	}

	doc, err := c.apiClient.FindByField(ctx, c.collection, "codigo", *codigo)
	if err != nil {
		if errors.Is(err, api.ErrDocumentNotFound) {
			return fmt.Errorf("no product with barcode %s", *codigo)
		}
		return fmt.Errorf("server lookup failed: %w", err)
	}

	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	var p models.Producto
	if err := json.Unmarshal(fields, &p); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	p.ID = doc.ID

	c.io.Printf("%s\n", p.Nombre)
	c.io.Printf("  ID:     %s\n", p.ID)
	c.io.Printf("  Codigo: %s\n", p.Codigo)
	c.io.Printf("  PVP:    %.2f\n", p.PVP)
	c.io.Printf("  Stock:  %d\n", p.Stock)
	if p.FechaCaducidad != "" {
		c.io.Printf("  Caduca: %s\n", p.FechaCaducidad)
	}

	return nil
}
