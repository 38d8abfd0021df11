package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionPayable    TransactionType = "payable"
	TransactionReceivable TransactionType = "receivable"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionPaid      TransactionStatus = "paid"
	TransactionCancelled TransactionStatus = "cancelled"
)

// FinancialTransaction - contas a pagar / a receber.
type FinancialTransaction struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Type           TransactionType   `gorm:"size:10;index;not null" json:"type"`
	Description    string            `gorm:"size:255;not null" json:"description"`
	Amount         decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"amount"`
	DueDate        time.Time         `gorm:"index;not null" json:"due_date"`
	Status         TransactionStatus `gorm:"size:10;index;not null" json:"status"`
	PaymentDate    *time.Time        `json:"payment_date,omitempty"`
	PaymentMethod  *PaymentMethod    `gorm:"size:20" json:"payment_method,omitempty"`
	Category       string            `gorm:"size:50;not null" json:"category"`
	DocumentNumber string            `gorm:"size:50" json:"document_number,omitempty"`
	Notes          string            `gorm:"size:255" json:"notes"`
	CreatedBy      uint              `json:"created_by"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Commission - comissão de garçom sobre um pedido pago.
type Commission struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"index;not null" json:"user_id"`
	OrderID     string            `gorm:"size:36;index;not null" json:"order_id"`
	Amount      decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Percentage  decimal.Decimal   `gorm:"type:numeric(5,2);not null" json:"percentage"`
	Status      TransactionStatus `gorm:"size:10;index;not null" json:"status"`
	PaymentDate *time.Time        `json:"payment_date,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
