package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jrenteria/tiendasync/internal/models"
)

// CodigoPattern определяет допустимый формат штрих-кода
// Только цифры, 3-14 символов (EAN-8, EAN-13, UPC, внутренние PLU-коды)
var CodigoPattern = regexp.MustCompile(`^[0-9]{3,14}$`)

const (
	// MaxNombreLen максимальная длина названия товара
	MaxNombreLen = 120
	// FechaLayout формат даты срока годности
	FechaLayout = "2006-01-02"
)

// ValidateProducto проверяет поля товара перед локальной записью.
// Штрих-код и срок годности необязательны, но если заданы — проверяются
// на формат.
func ValidateProducto(p models.Producto) error {
	if p.Nombre == "" {
		return fmt.Errorf("nombre cannot be empty")
	}

	if len(p.Nombre) > MaxNombreLen {
		return fmt.Errorf("nombre must not exceed %d characters", MaxNombreLen)
	}

	if p.Codigo != "" && !CodigoPattern.MatchString(p.Codigo) {
		return fmt.Errorf("codigo must be 3-14 digits")
	}

	if p.PVP < 0 {
		return fmt.Errorf("pvp cannot be negative")
	}

	if p.CostoCompra < 0 {
		return fmt.Errorf("costo_compra cannot be negative")
	}

	if p.CostoSinIVA < 0 {
		return fmt.Errorf("costo_sin_iva cannot be negative")
	}

	if p.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}

	if p.StockMinimo < 0 {
		return fmt.Errorf("stock_minimo cannot be negative")
	}

	if p.FechaCaducidad != "" {
		if _, err := time.Parse(FechaLayout, p.FechaCaducidad); err != nil {
			return fmt.Errorf("fecha_caducidad must be in YYYY-MM-DD format")
		}
	}

	return nil
}
