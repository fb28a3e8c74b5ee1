package service

import (
	"errors"
	"log/slog"

	"github.com/medibook/backend-go/internal/database/models"
	"github.com/medibook/backend-go/internal/database/repository"
	"github.com/medibook/backend-go/internal/identity"
)

// UserService syncs identity-provider accounts into the local user table.
type UserService interface {
	// SyncUser creates the local record on first sight of an external
	// identity and resyncs name/email drift afterwards. Idempotent.
	SyncUser(ident *identity.Identity) (*models.User, error)

	// ResolveUser maps an external identity id to the local user record.
	ResolveUser(externalID string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) SyncUser(ident *identity.Identity) (*models.User, error) {
	if ident == nil || ident.ExternalID == "" {
		return nil, unauthorizedError("user not authenticated")
	}

	user, err := s.userRepo.FindByExternalID(ident.ExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return s.createFromIdentity(ident)
		}
		s.logger.Error("❌ [UserService] Failed to look up user for sync", "external_id", ident.ExternalID, "error", err)
		return nil, unknownError("could not sync user", err)
	}

	// Resync provider-held fields when they drift
	if user.FirstName != ident.FirstName || user.LastName != ident.LastName || user.Email != ident.Email {
		user.FirstName = ident.FirstName
		user.LastName = ident.LastName
		user.Email = ident.Email

		if err := s.userRepo.Update(user); err != nil {
			s.logger.Error("❌ [UserService] Failed to resync user", "external_id", ident.ExternalID, "error", err)
			return nil, unknownError("could not sync user", err)
		}
		s.logger.Info("🔄 [UserService] Resynced user from identity provider", "user_id", user.ID)
	}

	return user, nil
}

func (s *userService) createFromIdentity(ident *identity.Identity) (*models.User, error) {
	user := &models.User{
		ExternalID: ident.ExternalID,
		FirstName:  ident.FirstName,
		LastName:   ident.LastName,
		Email:      ident.Email,
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to create user", "external_id", ident.ExternalID, "error", err)
		return nil, unknownError("could not sync user", err)
	}

	s.logger.Info("✅ [UserService] Created user from identity provider", "user_id", user.ID)
	return user, nil
}

func (s *userService) ResolveUser(externalID string) (*models.User, error) {
	if externalID == "" {
		return nil, unauthorizedError("user not authenticated")
	}

	user, err := s.userRepo.FindByExternalID(externalID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, unauthorizedError("user not found, please ensure your account is properly set up")
		}
		s.logger.Error("❌ [UserService] Failed to resolve user", "external_id", externalID, "error", err)
		return nil, unknownError("could not resolve user", err)
	}

	return user, nil
}
