package stock

import (
	"testing"

	"comanda-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuantity(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		movement models.MovementType
		qty      string
		want     string
	}{
		{"entrada soma", "10.500", models.MovementIn, "2.500", "13.000"},
		{"entrada em saldo zero", "0", models.MovementIn, "5", "5"},
		{"saída subtrai", "10", models.MovementOut, "4", "6"},
		{"saída zera o saldo", "4", models.MovementOut, "4", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextQuantity(
				decimal.RequireFromString(tt.current),
				tt.movement,
				decimal.RequireFromString(tt.qty),
			)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "saldo %s", got)
		})
	}
}

func TestNextQuantity_InsufficientStock(t *testing.T) {
	current := decimal.RequireFromString("3")
	got, err := NextQuantity(current, models.MovementOut, decimal.RequireFromString("5"))

	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.True(t, got.Equal(current), "saldo não muda em movimento rejeitado")
}

func TestNextQuantity_InvalidMovement(t *testing.T) {
	_, err := NextQuantity(decimal.Zero, "transfer", decimal.NewFromInt(1))
	require.Error(t, err)
}

func TestLowStock(t *testing.T) {
	tests := []struct {
		name string
		qty  string
		min  string
		want bool
	}{
		{"abaixo do mínimo", "2", "5", true},
		{"exatamente no mínimo", "5", "5", true},
		{"acima do mínimo", "8", "5", false},
		{"zerado", "0", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := models.StockItem{
				Quantity:    decimal.RequireFromString(tt.qty),
				MinQuantity: decimal.RequireFromString(tt.min),
			}
			assert.Equal(t, tt.want, item.LowStock())
		})
	}
}
