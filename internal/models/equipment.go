package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EquipmentType string

const (
	EquipmentPrinter EquipmentType = "printer"
	EquipmentPDV     EquipmentType = "pdv"
	EquipmentScale   EquipmentType = "scale"
	EquipmentOther   EquipmentType = "other"
)

type EquipmentStatus string

const (
	EquipmentActive      EquipmentStatus = "active"
	EquipmentInactive    EquipmentStatus = "inactive"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
)

type Equipment struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Name                string          `gorm:"size:100;not null" json:"name"`
	Type                EquipmentType   `gorm:"size:20;not null" json:"type"`
	Model               string          `gorm:"size:100" json:"model,omitempty"`
	SerialNumber        string          `gorm:"size:100" json:"serial_number,omitempty"`
	IPAddress           string          `gorm:"size:45" json:"ip_address,omitempty"`
	Port                string          `gorm:"size:10" json:"port,omitempty"`
	Status              EquipmentStatus `gorm:"size:20;index;not null" json:"status"`
	LastMaintenanceDate *time.Time      `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate *time.Time      `json:"next_maintenance_date,omitempty"`
	Notes               string          `gorm:"size:255" json:"notes"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
)

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

type EquipmentMaintenance struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	EquipmentID     uint              `gorm:"index;not null" json:"equipment_id"`
	Equipment       Equipment         `json:"-"`
	MaintenanceDate time.Time         `gorm:"not null" json:"maintenance_date"`
	Type            MaintenanceType   `gorm:"size:20;not null" json:"type"`
	Description     string            `gorm:"size:255;not null" json:"description"`
	Cost            *decimal.Decimal  `gorm:"type:numeric(12,2)" json:"cost,omitempty"`
	Technician      string            `gorm:"size:100" json:"technician,omitempty"`
	Status          MaintenanceStatus `gorm:"size:20;index;not null" json:"status"`
	Notes           string            `gorm:"size:255" json:"notes"`
	CreatedBy       uint              `json:"created_by"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
