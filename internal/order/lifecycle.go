package order

import (
	"errors"
	"fmt"

	"comanda-backend/internal/models"
)

var ErrInvalidTransition = errors.New("transição de status inválida")

// allowedTransitions - fluxo normal mais cancelamento a partir de
// qualquer estado não terminal. pago e cancelado são terminais.
var allowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:   {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing: {models.OrderReady, models.OrderCancelled},
	models.OrderReady:     {models.OrderDelivered, models.OrderCancelled},
	models.OrderDelivered: {models.OrderPaid, models.OrderCancelled},
}

func ValidStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderPending, models.OrderPreparing, models.OrderReady,
		models.OrderDelivered, models.OrderPaid, models.OrderCancelled:
		return true
	}
	return false
}

// CanTransition verifica a tabela de transições. O sistema legado aceitava
// qualquer escrita de status confiando na UI; aqui a transição é validada
// e escritas ilegais são rejeitadas.
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func Transition(o *models.Order, to models.OrderStatus) error {
	if !CanTransition(o.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	o.Status = to
	return nil
}
