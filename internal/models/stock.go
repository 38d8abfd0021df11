package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// StockItem - insumo controlado pelo painel de estoque. O saldo só muda
// por movimentos; nunca é editado diretamente.
type StockItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Category    string          `gorm:"size:50;index;not null" json:"category"`
	Unit        string          `gorm:"size:20;not null" json:"unit"` // kg, un, l
	Quantity    decimal.Decimal `gorm:"type:numeric(12,3);not null;default:0" json:"quantity"`
	MinQuantity decimal.Decimal `gorm:"type:numeric(12,3);not null;default:0" json:"min_quantity"`
	Supplier    string          `gorm:"size:100" json:"supplier,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LowStock sinaliza o alerta de reposição do painel.
func (i StockItem) LowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinQuantity)
}

type StockMovement struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	StockItemID uint             `gorm:"index;not null" json:"stock_item_id"`
	StockItem   StockItem        `json:"-"`
	Type        MovementType     `gorm:"size:3;not null" json:"type"`
	Quantity    decimal.Decimal  `gorm:"type:numeric(12,3);not null" json:"quantity"`
	UnitPrice   *decimal.Decimal `gorm:"type:numeric(12,2)" json:"unit_price,omitempty"`
	Supplier    string           `gorm:"size:100" json:"supplier,omitempty"`
	Notes       string           `gorm:"size:255" json:"notes"`
	CreatedBy   uint             `json:"created_by"`
	CreatedAt   time.Time        `json:"created_at"`
}
