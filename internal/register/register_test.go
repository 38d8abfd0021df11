package register

import (
	"testing"

	"comanda-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDifference(t *testing.T) {
	tests := []struct {
		name      string
		initial   string
		cashSales string
		final     string
		want      string
	}{
		{"sobra no caixa", "100.00", "250.00", "360.00", "10.00"},
		{"falta no caixa", "100.00", "250.00", "340.00", "-10.00"},
		{"caixa bate", "100.00", "250.00", "350.00", "0"},
		{"sem vendas em dinheiro", "200.00", "0", "200.00", "0"},
		{"centavos", "50.00", "89.90", "139.85", "-0.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difference(
				decimal.RequireFromString(tt.initial),
				decimal.RequireFromString(tt.cashSales),
				decimal.RequireFromString(tt.final),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "diferença %s", got)
		})
	}
}

func TestSalesColumn(t *testing.T) {
	tests := []struct {
		method models.PaymentMethod
		want   string
	}{
		{models.PaymentCash, "cash_sales"},
		{models.PaymentCredit, "card_sales"},
		{models.PaymentDebit, "card_sales"},
		{models.PaymentPix, "pix_sales"},
		{models.PaymentMealTicket, "meal_ticket_sales"},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.Equal(t, tt.want, models.SalesColumn(tt.method))
		})
	}
}
