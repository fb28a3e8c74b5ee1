package service_test

import (
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/medibook/backend-go/internal/database/models"
	"github.com/medibook/backend-go/internal/database/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ==================== MOCK USER REPOSITORY ====================

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByExternalID(externalID string) (*models.User, error) {
	args := m.Called(externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// ==================== MOCK DOCTOR REPOSITORY ====================

// MockDoctorRepository implements repository.DoctorRepository for testing
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(doctor *models.Doctor) error {
	args := m.Called(doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindByID(id string) (*models.Doctor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) ListWithAppointmentCounts() ([]repository.DoctorWithCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DoctorWithCount), args.Error(1)
}

func (m *MockDoctorRepository) Update(doctor *models.Doctor) error {
	args := m.Called(doctor)
	return args.Error(0)
}

// ==================== MOCK APPOINTMENT REPOSITORY ====================

// MockAppointmentRepository implements repository.AppointmentRepository for testing
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) ListAll() ([]models.Appointment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByUser(userID uint) ([]models.Appointment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) CountByUserAndStatus(userID uint, status models.AppointmentStatus) (int64, error) {
	args := m.Called(userID, status)
	return args.Get(0).(int64), args.Error(1)
}
