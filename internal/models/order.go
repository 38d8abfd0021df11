package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCredit     PaymentMethod = "credit"
	PaymentDebit      PaymentMethod = "debit"
	PaymentPix        PaymentMethod = "pix"
	PaymentCash       PaymentMethod = "cash"
	PaymentMealTicket PaymentMethod = "meal-ticket"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCredit, PaymentDebit, PaymentPix, PaymentCash, PaymentMealTicket:
		return true
	}
	return false
}

// MeatPoint - ponto da carne, só faz sentido quando o item do cardápio
// tem HasMeatPoint.
type MeatPoint string

const (
	MeatRare       MeatPoint = "Mal passado"
	MeatMediumRare MeatPoint = "Ao ponto para mal"
	MeatMedium     MeatPoint = "Ao ponto"
	MeatMediumWell MeatPoint = "Ao ponto para bem"
	MeatWellDone   MeatPoint = "Bem passado"
)

var MeatPoints = []MeatPoint{MeatRare, MeatMediumRare, MeatMedium, MeatMediumWell, MeatWellDone}

func ValidMeatPoint(p MeatPoint) bool {
	if p == "" {
		return true
	}
	for _, mp := range MeatPoints {
		if mp == p {
			return true
		}
	}
	return false
}

// OrderItem - linha do pedido: snapshot do item do cardápio mais a
// customização. A identidade para merge é (MenuItemID, Notes, MeatPoint,
// RemovedItems ordenado).
type OrderItem struct {
	ID           uint            `gorm:"primaryKey" json:"-"`
	OrderID      string          `gorm:"size:36;index" json:"-"`
	MenuItemID   uint            `gorm:"not null" json:"menu_item_id"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Notes        string          `gorm:"size:255" json:"notes"`
	MeatPoint    MeatPoint       `gorm:"size:30" json:"meat_point,omitempty"`
	RemovedItems StringList      `gorm:"type:text" json:"removed_items,omitempty"`
}

// Order - comanda de uma mesa. Total é derivado: soma de price*quantity,
// recalculado a cada mutação dos itens.
type Order struct {
	ID            string           `gorm:"primaryKey;size:36" json:"id"`
	TableNumber   string           `gorm:"size:20;index;not null" json:"table_number"`
	Items         []OrderItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status        OrderStatus      `gorm:"size:20;index;not null" json:"status"`
	Total         decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"total"`
	ServiceFee    decimal.Decimal  `gorm:"type:numeric(12,2)" json:"service_fee"`
	PaymentMethod *PaymentMethod   `gorm:"size:20" json:"payment_method,omitempty"`
	PaidAmount    *decimal.Decimal `gorm:"type:numeric(12,2)" json:"paid_amount,omitempty"`
	Change        *decimal.Decimal `gorm:"type:numeric(12,2)" json:"change,omitempty"`
	ParentOrderID *string          `gorm:"size:36;index" json:"parent_order_id,omitempty"`
	SplitWith     StringList       `gorm:"type:text" json:"split_with,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// RecalcTotal recalcula o total a partir das linhas, sem arredondamento
// intermediário.
func (o *Order) RecalcTotal() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	o.Total = total
}
