package models

import (
	"time"
)

// Gender is the enumerated doctor gender stored as text.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Doctor represents a doctor managed through the admin view. Email is
// globally unique; the store enforces it and the service re-checks it
// before updates.
type Doctor struct {
	ID         string    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Speciality string    `gorm:"not null" json:"speciality"`
	Phone      *string   `json:"phone"`
	Bio        string    `json:"bio"`
	Gender     Gender    `gorm:"not null;default:MALE" json:"gender"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

// TableName overrides the table name
func (Doctor) TableName() string {
	return "doctors"
}
