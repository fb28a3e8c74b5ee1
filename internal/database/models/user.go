package models

import (
	"time"
)

// User is the platform-side record for an identity-provider account.
// It is created on first sync and only resynced afterwards when the
// provider-held name or email drifts.
type User struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ExternalID string    `gorm:"uniqueIndex;not null" json:"external_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `gorm:"not null" json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:UserID" json:"appointments,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
