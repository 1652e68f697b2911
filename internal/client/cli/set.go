package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/jrenteria/tiendasync/internal/models"
	"github.com/jrenteria/tiendasync/internal/validation"
)

func (c *Cli) runSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	id := fs.String("id", "", "product id (required)")
	nombre := fs.String("nombre", "", "product name")
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

	if *id == "" {
		return fmt.Errorf("missing product id. Usage: tiendasync set --id ID [flags]")
	}

	current, ok := findByID(c.engine.Snapshot(), *id)
	if !ok {
		return fmt.Errorf("product %s not found in local catalog", *id)
	}

	// Меняем только явно переданные флаги, остальные поля не трогаем
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nombre":
			current.Nombre = *nombre
		case "descripcion":
			current.Descripcion = *descripcion
		case "codigo":
			current.Codigo = *codigo
		case "caducidad":
			current.FechaCaducidad = *caducidad
		case "pvp":
			current.PVP = *pvp
		case "costo-compra":
			current.CostoCompra = *costoCompra
		case "costo-sin-iva":
			current.CostoSinIVA = *costoSinIVA
		case "iva":
			current.CheckIVA = *iva
		case "stock":
			current.Stock = *stock
		case "stock-minimo":
			current.StockMinimo = *stockMinimo
		}
	})

	if err := validation.ValidateProducto(current); err != nil {
		return err
	}

	saved := c.engine.UpsertLocal(ctx, current)

	c.io.Printf("Updated %q (id %s)\n", saved.Nombre, saved.ID)
	c.reportPending(ctx)

	return nil
}

func findByID(list []models.Producto, id string) (models.Producto, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return models.Producto{}, false
}
