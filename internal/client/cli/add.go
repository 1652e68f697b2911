package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/jrenteria/tiendasync/internal/models"
	"github.com/jrenteria/tiendasync/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	nombre := fs.String("nombre", "", "product name (required)")
	descripcion := fs.String("descripcion", "", "description")
	codigo := fs.String("codigo", "", "barcode")
	caducidad := fs.String("caducidad", "", "expiry date (YYYY-MM-DD)")
	pvp := fs.Float64("pvp", 0, "retail price")
	costoCompra := fs.Float64("costo-compra", 0, "purchase cost")
	costoSinIVA := fs.Float64("costo-sin-iva", 0, "cost without VAT")
	iva := fs.Bool("iva", false, "VAT applies")
	stock := fs.Int("stock", 0, "stock units")
	stockMinimo := fs.Int("stock-minimo", 0, "low stock threshold")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *nombre == "" {
		return fmt.Errorf("missing product name. Usage: tiendasync add --nombre NAME [flags]")
	}

	p := models.Producto{
		Nombre:         *nombre,
		Descripcion:    *descripcion,
		Codigo:         *codigo,
		FechaCaducidad: *caducidad,
		PVP:            *pvp,
		CostoCompra:    *costoCompra,
		CostoSinIVA:    *costoSinIVA,
		CheckIVA:       *iva,
		Stock:          *stock,
		StockMinimo:    *stockMinimo,
	}
	if err := validation.ValidateProducto(p); err != nil {
		return err
	}

	saved := c.engine.UpsertLocal(ctx, p)

	c.io.Printf("Added %q (id %s)\n", saved.Nombre, saved.ID)
	c.reportPending(ctx)

	return nil
}

// reportPending печатает предупреждение, если очередь ещё не доставлена
func (c *Cli) reportPending(ctx context.Context) {
	if pending := c.engine.PendingCount(ctx); pending > 0 {
		c.io.Printf("⚠ %d change(s) pending sync\n", pending)
	}
}
