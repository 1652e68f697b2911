package sync

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jrenteria/tiendasync/internal/models"
	"github.com/jrenteria/tiendasync/pkg/api"
)

// documentFromProducto сериализует запись каталога в wire-документ.
// Все бизнес-поля уходят в Fields; id дублируется в envelope.
func documentFromProducto(p models.Producto) (api.Document, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return api.Document{}, fmt.Errorf("failed to marshal producto: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return api.Document{}, fmt.Errorf("failed to build document fields: %w", err)
	}

	return api.Document{
		ID:        p.ID,
		Fields:    fields,
		UpdatedAt: p.UpdatedAt.Millis(),
	}, nil
}

// productoFromDocument восстанавливает запись каталога из wire-документа.
// Серверный timestamp из envelope авторитетен и замещает значение поля;
// гетерогенные формы внутри Fields нормализует models.Timestamp.
func productoFromDocument(d api.Document) (models.Producto, error) {
	data, err := json.Marshal(d.Fields)
	if err != nil {
		return models.Producto{}, fmt.Errorf("failed to marshal document fields: %w", err)
	}

	var p models.Producto
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Producto{}, fmt.Errorf("failed to unmarshal producto: %w", err)
	}

	p.ID = d.ID
	if d.UpdatedAt != 0 {
		p.UpdatedAt = models.Timestamp(d.UpdatedAt)
	}
	return p, nil
}

// sortProducts упорядочивает срез детерминированно: по codigo, затем по id.
// Порядок повторяет сортировку полного fetch и делает эмиссии стабильными.
func sortProducts(list []models.Producto) {
	sort.SliceStable(list, func(i, j int) bool {
		if c := strings.Compare(list[i].Codigo, list[j].Codigo); c != 0 {
			return c < 0
		}
		return list[i].ID < list[j].ID
	})
}
