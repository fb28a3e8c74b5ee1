package repository

import (
	"gorm.io/gorm"

	"github.com/medibook/backend-go/internal/database/models"
)

// AppointmentRepository defines the interface for appointment data
// operations. This layer is read-heavy: appointments are created through
// the booking provider flow, not here.
type AppointmentRepository interface {
	ListAll() ([]models.Appointment, error)
	ListByUser(userID uint) ([]models.Appointment, error)
	CountByUser(userID uint) (int64, error)
	CountByUserAndStatus(userID uint, status models.AppointmentStatus) (int64, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository instance
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// ListAll returns every appointment newest-first with its user and doctor
// preloaded for the admin overview.
func (r *appointmentRepository) ListAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Preload("User").
		Preload("Doctor").
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListByUser returns the user's appointments ordered by date, then by
// time slot within the same date.
func (r *appointmentRepository) ListByUser(userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Preload("User").
		Preload("Doctor").
		Where("user_id = ?", userID).
		Order("date ASC").
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByUserAndStatus(userID uint, status models.AppointmentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}
