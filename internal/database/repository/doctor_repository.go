package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/medibook/backend-go/internal/database/models"
)

// DoctorWithCount pairs a doctor with its derived appointment count. The
// count is computed at query time, never stored.
type DoctorWithCount struct {
	models.Doctor
	AppointmentsCount int64 `json:"appointments_count"`
}

// DoctorRepository defines the interface for doctor data operations
type DoctorRepository interface {
	Create(doctor *models.Doctor) error
	FindByID(id string) (*models.Doctor, error)
	FindByEmail(email string) (*models.Doctor, error)
	ListWithAppointmentCounts() ([]DoctorWithCount, error)
	Update(doctor *models.Doctor) error
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository instance
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(doctor *models.Doctor) error {
	err := r.db.Create(doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateDoctorEmail
		}
		return err
	}
	return nil
}

func (r *doctorRepository) FindByID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// ListWithAppointmentCounts returns all doctors newest-first, each with
// the number of appointments currently referencing it.
func (r *doctorRepository) ListWithAppointmentCounts() ([]DoctorWithCount, error) {
	var doctors []models.Doctor
	if err := r.db.Order("created_at DESC").Find(&doctors).Error; err != nil {
		return nil, err
	}

	results := make([]DoctorWithCount, 0, len(doctors))
	for _, doctor := range doctors {
		var count int64
		if err := r.db.Model(&models.Appointment{}).
			Where("doctor_id = ?", doctor.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		results = append(results, DoctorWithCount{Doctor: doctor, AppointmentsCount: count})
	}

	return results, nil
}

func (r *doctorRepository) Update(doctor *models.Doctor) error {
	err := r.db.Save(doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateDoctorEmail
		}
		return err
	}
	return nil
}

// Repository errors
var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDuplicateDoctorEmail = errors.New("doctor email already in use")
)
