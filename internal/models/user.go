package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleManager   UserRole = "manager"
	RoleCashier   UserRole = "cashier"
	RoleWaiter    UserRole = "waiter"
	RoleKitchen   UserRole = "kitchen"
	RoleStock     UserRole = "stock"
	RoleHR        UserRole = "hr"
	RoleFinancial UserRole = "financial"
	RoleEquipment UserRole = "equipment"
)

// AllRoles - admin herda todos os painéis
var AllRoles = RoleList{
	RoleAdmin, RoleManager, RoleCashier, RoleWaiter,
	RoleKitchen, RoleStock, RoleHR, RoleFinancial, RoleEquipment,
}

func ValidRole(r UserRole) bool {
	for _, role := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}

// RoleList - o esquema legado guarda os papéis como string separada por
// vírgula; o parse acontece uma única vez aqui, na borda do repositório.
type RoleList []UserRole

func (l RoleList) Value() (driver.Value, error) {
	parts := make([]string, 0, len(l))
	for _, r := range l {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ","), nil
}

func (l *RoleList) Scan(value any) error {
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
		return fmt.Errorf("tipo inesperado para RoleList: %T", value)
	}

	*l = (*l)[:0]
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*l = append(*l, UserRole(part))
		}
	}
	return nil
}

func (l RoleList) Has(role UserRole) bool {
	for _, r := range l {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID        uint     `gorm:"primaryKey"`
	NumericID int      `gorm:"uniqueIndex;not null"` // ID digitado no login
	Name      string   `gorm:"size:100;not null"`
	PinHash   string   `gorm:"size:255;not null"`
	Roles     RoleList `gorm:"type:text;not null"`
	Active    bool     `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
