package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
	EmployeeVacation EmployeeStatus = "vacation"
	EmployeeLeave    EmployeeStatus = "leave"
)

type Employee struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	UserID         *uint            `json:"user_id,omitempty"`
	FullName       string           `gorm:"size:100;not null" json:"full_name"`
	DocumentNumber string           `gorm:"size:20;uniqueIndex;not null" json:"document_number"` // CPF
	BirthDate      *time.Time       `json:"birth_date,omitempty"`
	HireDate       time.Time        `gorm:"not null" json:"hire_date"`
	Position       string           `gorm:"size:50;not null" json:"position"`
	Department     string           `gorm:"size:50;not null" json:"department"`
	Salary         *decimal.Decimal `gorm:"type:numeric(12,2)" json:"salary,omitempty"`
	Status         EmployeeStatus   `gorm:"size:20;index;not null" json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type ScheduleStatus string

const (
	ScheduleScheduled ScheduleStatus = "scheduled"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleAbsent    ScheduleStatus = "absent"
	ScheduleChanged   ScheduleStatus = "changed"
)

type WorkSchedule struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	EmployeeID uint           `gorm:"index;not null" json:"employee_id"`
	Employee   Employee       `json:"-"`
	Date       time.Time      `gorm:"index;not null" json:"date"`
	StartTime  string         `gorm:"size:5;not null" json:"start_time"` // "HH:MM"
	EndTime    string         `gorm:"size:5;not null" json:"end_time"`
	BreakStart string         `gorm:"size:5" json:"break_start,omitempty"`
	BreakEnd   string         `gorm:"size:5" json:"break_end,omitempty"`
	Status     ScheduleStatus `gorm:"size:20;not null" json:"status"`
	Notes      string         `gorm:"size:255" json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type VacationStatus string

const (
	VacationScheduled VacationStatus = "scheduled"
	VacationApproved  VacationStatus = "approved"
	VacationCancelled VacationStatus = "cancelled"
	VacationCompleted VacationStatus = "completed"
)

// PerformanceReview - avaliação periódica de desempenho, nota de 1 a 5.
type PerformanceReview struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeID   uint      `gorm:"index;not null" json:"employee_id"`
	Employee     Employee  `json:"-"`
	ReviewDate   time.Time `gorm:"not null" json:"review_date"`
	Score        int       `gorm:"not null" json:"score"`
	Strengths    string    `gorm:"size:255" json:"strengths,omitempty"`
	Improvements string    `gorm:"size:255" json:"improvements,omitempty"`
	Goals        string    `gorm:"size:255" json:"goals,omitempty"`
	ReviewerID   uint      `json:"reviewer_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Vacation struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	EmployeeID uint           `gorm:"index;not null" json:"employee_id"`
	Employee   Employee       `json:"-"`
	StartDate  time.Time      `gorm:"not null" json:"start_date"`
	EndDate    time.Time      `gorm:"not null" json:"end_date"`
	Status     VacationStatus `gorm:"size:20;not null" json:"status"`
	Notes      string         `gorm:"size:255" json:"notes"`
	CreatedBy  uint           `json:"created_by"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
