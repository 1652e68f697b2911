package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/jrenteria/tiendasync/internal/client/view"
	"github.com/jrenteria/tiendasync/internal/models"
)

// matchesFilter — фильтр списка: подстрока в nombre или codigo,
// без учета регистра
func matchesFilter(p models.Producto, needle string) bool {
	needle = strings.ToLower(needle)
	return strings.Contains(strings.ToLower(p.Nombre), needle) ||
		strings.Contains(strings.ToLower(p.Codigo), needle)
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	filter := fs.String("filter", "", "substring filter on nombre/codigo")
	sortKey := fs.String("sort", "nombre", "sort field (json name: nombre, codigo, pvp, stock, ...)")
	dir := fs.String("dir", "asc", "sort direction: asc or desc")
	page := fs.Int("page", 0, "page index (0-based)")
	size := fs.Int("size", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Первый запуск тянет полный каталог с сервера; дальше читаем кэш,
	// дельты доезжают фоном
	list, err := c.engine.LoadOnce(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	source := make(chan []models.Producto, 1)
	source <- list

	ps := view.NewPagedSource(source, view.Options[models.Producto, string]{
		FilterFunc:      matchesFilter,
		InitialPageSize: *size,
	})
	pages := ps.Connect()
	defer ps.Disconnect()

	// Первая эмиссия — снимок каталога; после неё сеттеры пересчитывают
	// страницу синхронно
	<-pages

	direction := view.Asc
	if *dir == "desc" {
		direction = view.Desc
	}
	ps.SetSort(*sortKey, direction)
	ps.SetPage(*page, *size)
	if *filter != "" {
		ps.SetFilter(*filter)
	}

	visible := <-pages
	total := ps.Total()

	if total == 0 {
		c.io.Println("No products found.")
		return nil
	}

	c.io.Printf("%-14s %-30s %10s %8s\n", "CODIGO", "NOMBRE", "PVP", "STOCK")
	for _, p := range visible {
		marker := ""
		if p.LowStock() {
			marker = "  ⚠ low stock"
		}
		c.io.Printf("%-14s %-30s %10.2f %8d%s\n", p.Codigo, p.Nombre, p.PVP, p.Stock, marker)
	}

	totalPages := (total + *size - 1) / *size
	c.io.Println()
	c.io.Printf("Page %d of %d — %d product(s)\n", *page+1, totalPages, total)

	return nil
}
