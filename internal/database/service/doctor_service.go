package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medibook/backend-go/internal/config"
	"github.com/medibook/backend-go/internal/database/listcache"
	"github.com/medibook/backend-go/internal/database/models"
	"github.com/medibook/backend-go/internal/database/repository"
	"github.com/medibook/backend-go/internal/format"
)

// CreateDoctorInput carries the fields for a new doctor. Name, email,
// speciality and phone are required.
type CreateDoctorInput struct {
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Speciality string        `json:"speciality"`
	Phone      string        `json:"phone"`
	Bio        string        `json:"bio"`
	Gender     models.Gender `json:"gender"`
	IsActive   bool          `json:"is_active"`
}

// UpdateDoctorInput carries the full field set for a doctor update. The
// update is an unconditional overwrite: partial updates are not part of
// this operation's contract even though Phone may be null.
type UpdateDoctorInput struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      *string       `json:"phone"`
	Speciality string        `json:"speciality"`
	Gender     models.Gender `json:"gender"`
	IsActive   bool          `json:"is_active"`
}

// DoctorService defines the doctor business logic consumed by the admin
// view.
type DoctorService interface {
	ListDoctors(ctx context.Context) ([]repository.DoctorWithCount, error)
	CreateDoctor(ctx context.Context, input CreateDoctorInput) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, input UpdateDoctorInput) (*models.Doctor, error)
}

type doctorService struct {
	doctorRepo repository.DoctorRepository
	cache      *listcache.Cache
	cfg        *config.Config
	logger     *slog.Logger
}

// NewDoctorService creates a new doctor service instance
func NewDoctorService(
	doctorRepo repository.DoctorRepository,
	cache *listcache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) DoctorService {
	return &doctorService{
		doctorRepo: doctorRepo,
		cache:      cache,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *doctorService) ListDoctors(ctx context.Context) ([]repository.DoctorWithCount, error) {
	var cached []repository.DoctorWithCount
	if s.cache.Get(ctx, listcache.KeyDoctors, &cached) {
		return cached, nil
	}

	doctors, err := s.doctorRepo.ListWithAppointmentCounts()
	if err != nil {
		s.logger.Error("❌ [DoctorService] Failed to fetch doctors", "error", err)
		return nil, unknownError("could not fetch doctors", err)
	}

	s.cache.Set(ctx, listcache.KeyDoctors, doctors)
	return doctors, nil
}

func (s *doctorService) CreateDoctor(ctx context.Context, input CreateDoctorInput) (*models.Doctor, error) {
	if input.Name == "" || input.Email == "" || input.Speciality == "" || input.Phone == "" {
		return nil, validationError("missing required fields")
	}

	phone := input.Phone
	doctor := &models.Doctor{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Speciality: input.Speciality,
		Phone:      &phone,
		Bio:        input.Bio,
		Gender:     input.Gender,
		IsActive:   input.IsActive,
		ImageURL:   format.GenerateAvatar(s.cfg.AvatarBaseURL, input.Name, string(input.Gender)),
	}

	if err := s.doctorRepo.Create(doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicateDoctorEmail) {
			return nil, conflictError("a doctor with this email already exists")
		}
		s.logger.Error("❌ [DoctorService] Failed to create doctor", "email", input.Email, "error", err)
		return nil, unknownError("could not create doctor", err)
	}

	s.cache.Invalidate(ctx, listcache.KeyDoctors)
	s.logger.Info("✅ [DoctorService] Doctor created", "doctor_id", doctor.ID, "name", doctor.Name)

	return doctor, nil
}

func (s *doctorService) UpdateDoctor(ctx context.Context, input UpdateDoctorInput) (*models.Doctor, error) {
	if input.Name == "" || input.Email == "" {
		return nil, validationError("name and email are required fields")
	}

	current, err := s.doctorRepo.FindByID(input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return nil, notFoundError("doctor not found")
		}
		s.logger.Error("❌ [DoctorService] Failed to load doctor for update", "doctor_id", input.ID, "error", err)
		return nil, unknownError("could not update doctor", err)
	}

	// If the email is being changed, make sure no other doctor holds the
	// target address already. Keeping the current email is always fine.
	if input.Email != current.Email {
		existing, err := s.doctorRepo.FindByEmail(input.Email)
		if err != nil && !errors.Is(err, repository.ErrDoctorNotFound) {
			s.logger.Error("❌ [DoctorService] Failed to check email uniqueness", "email", input.Email, "error", err)
			return nil, unknownError("could not update doctor", err)
		}
		if existing != nil {
			return nil, conflictError("a doctor with this email already exists")
		}
	}

	current.Name = input.Name
	current.Email = input.Email
	current.Phone = input.Phone
	current.Speciality = input.Speciality
	current.Gender = input.Gender
	current.IsActive = input.IsActive

	if err := s.doctorRepo.Update(current); err != nil {
		if errors.Is(err, repository.ErrDuplicateDoctorEmail) {
			return nil, conflictError("a doctor with this email already exists")
		}
		s.logger.Error("❌ [DoctorService] Failed to update doctor", "doctor_id", input.ID, "error", err)
		return nil, unknownError("could not update doctor", err)
	}

	s.cache.Invalidate(ctx, listcache.KeyDoctors)
	s.logger.Info("✅ [DoctorService] Doctor updated", "doctor_id", current.ID, "name", current.Name)

	return current, nil
}
