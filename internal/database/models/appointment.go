package models

import (
	"time"
)

// AppointmentStatus is the enumerated appointment lifecycle state.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// Appointment links a user to a doctor on a calendar date and a wall-clock
// time slot. Date carries no meaningful time-of-day component; Time is the
// "HH:MM" slot string. Referential integrity to users and doctors is
// enforced by the store.
type Appointment struct {
	ID        uint              `gorm:"primarykey" json:"id"`
	UserID    uint              `gorm:"not null;index" json:"user_id"`
	DoctorID  string            `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time         `gorm:"not null" json:"date"`
	Time      string            `gorm:"not null" json:"time"`
	Status    AppointmentStatus `gorm:"not null;default:PENDING" json:"status"`
	CreatedAt time.Time         `json:"created_at"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName overrides the table name
func (Appointment) TableName() string {
	return "appointments"
}
