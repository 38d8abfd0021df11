package models

import "time"

// DiningTable - mesa do salão, cadastro de referência para as reservas.
type DiningTable struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    string    `gorm:"size:20;uniqueIndex;not null" json:"number"`
	Seats     int       `gorm:"not null" json:"seats"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationStatus string

const (
	ReservationScheduled ReservationStatus = "scheduled"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationNoShow    ReservationStatus = "no_show"
)

type TableReservation struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	TableID       uint              `gorm:"index;not null" json:"table_id"`
	Table         DiningTable       `json:"-"`
	CustomerName  string            `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string            `gorm:"size:20" json:"customer_phone,omitempty"`
	PartySize     int               `gorm:"not null" json:"party_size"`
	ReservedFor   time.Time         `gorm:"index;not null" json:"reserved_for"`
	Status        ReservationStatus `gorm:"size:20;index;not null" json:"status"`
	Notes         string            `gorm:"size:255" json:"notes"`
	CreatedBy     uint              `json:"created_by"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
