package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducto_JSONFieldNames(t *testing.T) {
	p := Producto{
		ID:          "prod-1",
		Nombre:      "Atún",
		Codigo:      "7861001234",
		PVP:         1.25,
		Stock:       10,
		StockMinimo: 3,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	// Исторические имена полей wire-формата
	assert.Contains(t, raw, "nombre")
	assert.Contains(t, raw, "codigo")
	assert.Contains(t, raw, "pvp")
	assert.Contains(t, raw, "stock_minimo")
	assert.Contains(t, raw, "updatedAt")
}

func TestProducto_LowStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minimo   int
		expected bool
	}{
		{"below threshold", 2, 5, true},
		{"at threshold", 5, 5, true},
		{"above threshold", 10, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Producto{Stock: tt.stock, StockMinimo: tt.minimo}
			assert.Equal(t, tt.expected, p.LowStock())
		})
	}
}

func TestPendingOp_DeleteHasNoPayload(t *testing.T) {
	op := PendingOp{
		ID:        "prod-1",
		Kind:      OpDelete,
		UpdatedAt: Timestamp(100),
	}

	data, err := json.Marshal(op)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "payload")
}
