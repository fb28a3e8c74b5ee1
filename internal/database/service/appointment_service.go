package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/medibook/backend-go/internal/database/listcache"
	"github.com/medibook/backend-go/internal/database/models"
	"github.com/medibook/backend-go/internal/database/repository"
)

// AppointmentStats is the caller's appointment summary pair.
type AppointmentStats struct {
	TotalAppointments     int64 `json:"total_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
}

// UserAppointment is an appointment shaped for the patient dashboard:
// joined user and doctor summaries flattened, date reduced to a plain
// calendar-date string.
type UserAppointment struct {
	ID             uint                     `json:"id"`
	PatientName    string                   `json:"patient_name"`
	PatientEmail   string                   `json:"patient_email"`
	DoctorName     string                   `json:"doctor_name"`
	DoctorImageURL string                   `json:"doctor_image_url"`
	Date           string                   `json:"date"`
	Time           string                   `json:"time"`
	Status         models.AppointmentStatus `json:"status"`
}

// AdminAppointment is an appointment for the admin overview: the raw
// appointment fields plus the joined user and doctor summaries.
type AdminAppointment struct {
	ID        uint                     `json:"id"`
	Date      time.Time                `json:"date"`
	Time      string                   `json:"time"`
	Status    models.AppointmentStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
	User      PatientSummary           `json:"user"`
	Doctor    DoctorSummary            `json:"doctor"`
}

// PatientSummary is the slice of the user record the admin overview shows.
type PatientSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// DoctorSummary is the slice of the doctor record joined onto appointments.
type DoctorSummary struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// AppointmentService defines the appointment read operations.
type AppointmentService interface {
	ListAppointments(ctx context.Context) ([]AdminAppointment, error)
	UserAppointments(externalID string) ([]UserAppointment, error)
	UserAppointmentStats(externalID string) (*AppointmentStats, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	userService     UserService
	cache           *listcache.Cache
	logger          *slog.Logger
}

// NewAppointmentService creates a new appointment service instance
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	userService UserService,
	cache *listcache.Cache,
	logger *slog.Logger,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		userService:     userService,
		cache:           cache,
		logger:          logger,
	}
}

func (s *appointmentService) ListAppointments(ctx context.Context) ([]AdminAppointment, error) {
	var cached []AdminAppointment
	if s.cache.Get(ctx, listcache.KeyAppointments, &cached) {
		return cached, nil
	}

	appointments, err := s.appointmentRepo.ListAll()
	if err != nil {
		s.logger.Error("❌ [AppointmentService] Failed to fetch appointments", "error", err)
		return nil, unknownError("could not fetch appointments", err)
	}

	results := make([]AdminAppointment, 0, len(appointments))
	for _, appointment := range appointments {
		results = append(results, AdminAppointment{
			ID:        appointment.ID,
			Date:      appointment.Date,
			Time:      appointment.Time,
			Status:    appointment.Status,
			CreatedAt: appointment.CreatedAt,
			User: PatientSummary{
				FirstName: appointment.User.FirstName,
				LastName:  appointment.User.LastName,
				Email:     appointment.User.Email,
			},
			Doctor: DoctorSummary{
				Name:     appointment.Doctor.Name,
				ImageURL: appointment.Doctor.ImageURL,
			},
		})
	}

	s.cache.Set(ctx, listcache.KeyAppointments, results)
	return results, nil
}

func (s *appointmentService) UserAppointments(externalID string) ([]UserAppointment, error) {
	user, err := s.userService.ResolveUser(externalID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.ListByUser(user.ID)
	if err != nil {
		s.logger.Error("❌ [AppointmentService] Failed to fetch user appointments", "user_id", user.ID, "error", err)
		return nil, unknownError("could not fetch user appointments", err)
	}

	results := make([]UserAppointment, 0, len(appointments))
	for _, appointment := range appointments {
		results = append(results, transformAppointment(appointment))
	}

	return results, nil
}

func (s *appointmentService) UserAppointmentStats(externalID string) (*AppointmentStats, error) {
	user, err := s.userService.ResolveUser(externalID)
	if err != nil {
		return nil, err
	}

	// The two counts are independent; issue them without waiting on each
	// other.
	var total, completed int64
	var g errgroup.Group

	g.Go(func() error {
		var err error
		total, err = s.appointmentRepo.CountByUser(user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = s.appointmentRepo.CountByUserAndStatus(user.ID, models.AppointmentCompleted)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("❌ [AppointmentService] Failed to fetch user appointment stats", "user_id", user.ID, "error", err)
		return nil, unknownError("could not fetch user appointment stats", err)
	}

	return &AppointmentStats{
		TotalAppointments:     total,
		CompletedAppointments: completed,
	}, nil
}

// transformAppointment flattens a preloaded appointment into the dashboard
// shape. The doctor image URL defaults to empty, and the date drops its
// time-of-day component.
func transformAppointment(appointment models.Appointment) UserAppointment {
	return UserAppointment{
		ID:             appointment.ID,
		PatientName:    strings.TrimSpace(appointment.User.FirstName + " " + appointment.User.LastName),
		PatientEmail:   appointment.User.Email,
		DoctorName:     appointment.Doctor.Name,
		DoctorImageURL: appointment.Doctor.ImageURL,
		Date:           appointment.Date.Format("2006-01-02"),
		Time:           appointment.Time,
		Status:         appointment.Status,
	}
}
