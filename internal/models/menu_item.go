package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StringList - lista serializada como string separada por vírgula
// (alérgenos, ingredientes removíveis, ids de divisões irmãs).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

func (l *StringList) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("tipo inesperado para StringList: %T", value)
	}

	*l = (*l)[:0]
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// MenuItem - item do cardápio. Dados de referência: criados pelo admin,
// nunca alterados pelo fluxo de pedidos.
type MenuItem struct {
	ID                uint            `gorm:"primaryKey"`
	Name              string          `gorm:"size:100;not null"`
	Description       string          `gorm:"size:255"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category          string          `gorm:"size:50;index;not null"`
	Image             string          `gorm:"size:255"`
	PrepTime          int             `gorm:"not null"` // minutos
	Allergens         StringList      `gorm:"type:text"`
	HasMeatPoint      bool            `gorm:"default:false"`
	CustomizableItems StringList      `gorm:"type:text"` // ingredientes removíveis
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
