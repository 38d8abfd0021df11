package order

import (
	"testing"

	"comanda-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from models.OrderStatus
		to   models.OrderStatus
		want bool
	}{
		{models.OrderPending, models.OrderPreparing, true},
		{models.OrderPreparing, models.OrderReady, true},
		{models.OrderReady, models.OrderDelivered, true},
		{models.OrderDelivered, models.OrderPaid, true},

		{models.OrderPending, models.OrderCancelled, true},
		{models.OrderPreparing, models.OrderCancelled, true},
		{models.OrderReady, models.OrderCancelled, true},
		{models.OrderDelivered, models.OrderCancelled, true},

		// pular etapas não é permitido
		{models.OrderPending, models.OrderReady, false},
		{models.OrderPending, models.OrderDelivered, false},
		{models.OrderPending, models.OrderPaid, false},
		{models.OrderPreparing, models.OrderPaid, false},
		{models.OrderReady, models.OrderPaid, false},

		// voltar não é permitido
		{models.OrderPreparing, models.OrderPending, false},
		{models.OrderReady, models.OrderPreparing, false},
		{models.OrderDelivered, models.OrderReady, false},

		// pago e cancelado são terminais
		{models.OrderPaid, models.OrderCancelled, false},
		{models.OrderPaid, models.OrderDelivered, false},
		{models.OrderPaid, models.OrderPending, false},
		{models.OrderCancelled, models.OrderPending, false},
		{models.OrderCancelled, models.OrderPaid, false},

		{models.OrderPending, models.OrderPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransition(t *testing.T) {
	t.Run("transição válida muda o status", func(t *testing.T) {
		o := &models.Order{Status: models.OrderPending}
		require.NoError(t, Transition(o, models.OrderPreparing))
		assert.Equal(t, models.OrderPreparing, o.Status)
	})

	t.Run("transição inválida preserva o status", func(t *testing.T) {
		o := &models.Order{Status: models.OrderPending}
		err := Transition(o, models.OrderPaid)
		require.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, models.OrderPending, o.Status)
	})

	t.Run("estado terminal rejeita tudo", func(t *testing.T) {
		for _, to := range []models.OrderStatus{
			models.OrderPending, models.OrderPreparing, models.OrderReady,
			models.OrderDelivered, models.OrderCancelled,
		} {
			o := &models.Order{Status: models.OrderPaid}
			assert.ErrorIs(t, Transition(o, to), ErrInvalidTransition)
		}
	})
}

func TestValidStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.OrderPending, models.OrderPreparing, models.OrderReady,
		models.OrderDelivered, models.OrderPaid, models.OrderCancelled,
	} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
}
