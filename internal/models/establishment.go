package models

import "time"

// Establishment - unidade do negócio. Modules lista os painéis habilitados
// para a unidade (nomes de papel), ligados e desligados pelo admin.
type Establishment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Document  string     `gorm:"size:20;uniqueIndex;not null" json:"document"` // CNPJ
	Address   string     `gorm:"size:255" json:"address,omitempty"`
	Phone     string     `gorm:"size:20" json:"phone,omitempty"`
	Modules   StringList `gorm:"type:text" json:"modules"`
	Active    bool       `gorm:"default:true" json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
