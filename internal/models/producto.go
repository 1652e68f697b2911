package models

// Producto представляет одну позицию каталога.
// ID стабилен после первого назначения; UpdatedAt — нормализованный
// логический timestamp последней записи (см. Timestamp).
// JSON-теги повторяют исторические имена полей wire-формата.
type Producto struct {
	ID             string    `json:"id"`
	Nombre         string    `json:"nombre"`
	Descripcion    string    `json:"descripcion"`
	Codigo         string    `json:"codigo"`
	FechaCaducidad string    `json:"fecha_caducidad,omitempty"`
	PVP            float64   `json:"pvp"`
	CostoCompra    float64   `json:"costo_compra"`
	CostoSinIVA    float64   `json:"costo_sin_iva"`
	Stock          int       `json:"stock"`
	StockMinimo    int       `json:"stock_minimo"`
	CheckIVA       bool      `json:"check_iva"`
	UpdatedAt      Timestamp `json:"updatedAt"`
}

// LowStock сообщает, опустился ли остаток до минимального порога.
func (p Producto) LowStock() bool {
	return p.Stock <= p.StockMinimo
}
