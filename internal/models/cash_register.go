package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterStatus string

const (
	RegisterOpen   RegisterStatus = "open"
	RegisterClosed RegisterStatus = "closed"
)

// CashRegister - sessão de caixa entre abertura e fechamento. No máximo
// uma sessão aberta por vez (índice único parcial em status='open').
// Sessões fechadas são histórico imutável.
type CashRegister struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OpenedAt      time.Time       `gorm:"not null" json:"opened_at"`
	OpenedBy      uint            `gorm:"not null" json:"opened_by"`
	InitialAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"initial_amount"`
	Status        RegisterStatus  `gorm:"size:10;index;not null" json:"status"`

	// Acumulados por forma de pagamento, alimentados pelo fluxo de
	// pagamento enquanto a sessão está aberta.
	CashSales       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"cash_sales"`
	CardSales       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"card_sales"`
	PixSales        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"pix_sales"`
	MealTicketSales decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"meal_ticket_sales"`

	ClosedAt    *time.Time       `json:"closed_at,omitempty"`
	ClosedBy    *uint            `json:"closed_by,omitempty"`
	FinalAmount *decimal.Decimal `gorm:"type:numeric(12,2)" json:"final_amount,omitempty"`
	Difference  *decimal.Decimal `gorm:"type:numeric(12,2)" json:"difference,omitempty"` // final - (inicial + vendas em dinheiro)
	Notes       string           `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SalesColumn - coluna do agregado acumulado para a forma de pagamento.
// Crédito e débito somam no mesmo agregado de cartão.
func SalesColumn(method PaymentMethod) string {
	switch method {
	case PaymentCredit, PaymentDebit:
		return "card_sales"
	case PaymentPix:
		return "pix_sales"
	case PaymentMealTicket:
		return "meal_ticket_sales"
	default:
		return "cash_sales"
	}
}
