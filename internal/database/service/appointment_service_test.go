package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/backend-go/internal/database/models"
	"github.com/medibook/backend-go/internal/database/repository"
	"github.com/medibook/backend-go/internal/database/service"
)

func newAppointmentService(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) service.AppointmentService {
	userService := service.NewUserService(userRepo, testLogger())
	return service.NewAppointmentService(appointmentRepo, userService, nil, testLogger())
}

func TestAppointmentService_UserAppointmentStats(t *testing.T) {
	t.Run("five total two completed", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByExternalID", "user_123").Return(&models.User{ID: 42, ExternalID: "user_123"}, nil)

		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("CountByUser", uint(42)).Return(int64(5), nil)
		appointmentRepo.On("CountByUserAndStatus", uint(42), models.AppointmentCompleted).Return(int64(2), nil)

		stats, err := newAppointmentService(appointmentRepo, userRepo).UserAppointmentStats("user_123")

		require.NoError(t, err)
		assert.Equal(t, int64(5), stats.TotalAppointments)
		assert.Equal(t, int64(2), stats.CompletedAppointments)
		appointmentRepo.AssertExpectations(t)
	})

	t.Run("no identity is unauthorized", func(t *testing.T) {
		stats, err := newAppointmentService(new(MockAppointmentRepository), new(MockUserRepository)).UserAppointmentStats("")

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.Equal(t, service.KindUnauthorized, service.KindOf(err))
	})

	t.Run("no user record is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByExternalID", "user_missing").Return(nil, repository.ErrUserNotFound)

		stats, err := newAppointmentService(new(MockAppointmentRepository), userRepo).UserAppointmentStats("user_missing")

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.Equal(t, service.KindUnauthorized, service.KindOf(err))
	})

	t.Run("count failure collapses to generic", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByExternalID", "user_123").Return(&models.User{ID: 42}, nil)

		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("CountByUser", uint(42)).Return(int64(0), assert.AnError)
		appointmentRepo.On("CountByUserAndStatus", uint(42), models.AppointmentCompleted).Return(int64(0), nil)

		stats, err := newAppointmentService(appointmentRepo, userRepo).UserAppointmentStats("user_123")

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.Equal(t, service.KindUnknown, service.KindOf(err))
		assert.Equal(t, "could not fetch user appointment stats", err.Error())
	})
}

func TestAppointmentService_UserAppointments(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByExternalID", "user_123").Return(&models.User{ID: 42, ExternalID: "user_123"}, nil)

	appointmentRepo := new(MockAppointmentRepository)
	appointmentRepo.On("ListByUser", uint(42)).Return([]models.Appointment{
		{
			ID:     1,
			Date:   time.Date(2026, 9, 14, 13, 45, 30, 0, time.UTC),
			Time:   "09:30",
			Status: models.AppointmentConfirmed,
			User:   models.User{FirstName: "Jane", LastName: "", Email: "jane@example.com"},
			Doctor: models.Doctor{Name: "John Smith", ImageURL: "https://avatars.example/john"},
		},
		{
			ID:     2,
			Date:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			Time:   "11:00",
			Status: models.AppointmentCompleted,
			User:   models.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
			Doctor: models.Doctor{Name: "Mary Lee"},
		},
	}, nil)

	appointments, err := newAppointmentService(appointmentRepo, userRepo).UserAppointments("user_123")

	require.NoError(t, err)
	require.Len(t, appointments, 2)

	// Single name trimmed, date without time-of-day
	assert.Equal(t, "Jane", appointments[0].PatientName)
	assert.Equal(t, "2026-09-14", appointments[0].Date)
	assert.Equal(t, "09:30", appointments[0].Time)
	assert.Equal(t, "John Smith", appointments[0].DoctorName)
	assert.Equal(t, "https://avatars.example/john", appointments[0].DoctorImageURL)

	// Full name joined, missing doctor image defaults to empty
	assert.Equal(t, "Jane Doe", appointments[1].PatientName)
	assert.Equal(t, "2026-10-01", appointments[1].Date)
	assert.Equal(t, "", appointments[1].DoctorImageURL)
}

func TestAppointmentService_ListAppointments(t *testing.T) {
	ctx := context.Background()

	t.Run("joins user and doctor summaries", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("ListAll").Return([]models.Appointment{
			{
				ID:     1,
				Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
				Time:   "09:30",
				Status: models.AppointmentPending,
				User:   models.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", ExternalID: "user_123"},
				Doctor: models.Doctor{Name: "John Smith", ImageURL: "https://avatars.example/john", Email: "john@clinic.example"},
			},
			{ID: 2},
		}, nil)

		appointments, err := newAppointmentService(appointmentRepo, new(MockUserRepository)).ListAppointments(ctx)

		require.NoError(t, err)
		require.Len(t, appointments, 2)
		assert.Equal(t, "Jane", appointments[0].User.FirstName)
		assert.Equal(t, "jane@example.com", appointments[0].User.Email)
		assert.Equal(t, "John Smith", appointments[0].Doctor.Name)
		assert.Equal(t, "https://avatars.example/john", appointments[0].Doctor.ImageURL)
	})

	t.Run("store failure collapses to generic", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("ListAll").Return(nil, assert.AnError)

		appointments, err := newAppointmentService(appointmentRepo, new(MockUserRepository)).ListAppointments(ctx)

		require.Error(t, err)
		assert.Nil(t, appointments)
		assert.Equal(t, service.KindUnknown, service.KindOf(err))
		assert.Equal(t, "could not fetch appointments", err.Error())
	})
}
