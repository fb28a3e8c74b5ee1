package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medibook/backend-go/internal/database/models"
	"github.com/medibook/backend-go/internal/database/repository"
	"github.com/medibook/backend-go/internal/database/service"
	"github.com/medibook/backend-go/internal/identity"
)

func TestUserService_SyncUser(t *testing.T) {
	ident := &identity.Identity{
		ExternalID: "user_123",
		Email:      "jane@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
	}

	tests := []struct {
		name       string
		ident      *identity.Identity
		setupMocks func(*MockUserRepository)
		wantKind   service.Kind
		check      func(*testing.T, *models.User)
	}{
		{
			name:  "first sync creates the user",
			ident: ident,
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByExternalID", "user_123").Return(nil, repository.ErrUserNotFound)
				userRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
					args.Get(0).(*models.User).ID = 7
				}).Return(nil)
			},
			check: func(t *testing.T, user *models.User) {
				assert.Equal(t, uint(7), user.ID)
				assert.Equal(t, "user_123", user.ExternalID)
				assert.Equal(t, "jane@example.com", user.Email)
			},
		},
		{
			name:  "matching record is returned untouched",
			ident: ident,
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByExternalID", "user_123").Return(&models.User{
					ID: 7, ExternalID: "user_123", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
				}, nil)
			},
			check: func(t *testing.T, user *models.User) {
				assert.Equal(t, uint(7), user.ID)
			},
		},
		{
			name:  "drifted email is resynced",
			ident: ident,
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByExternalID", "user_123").Return(&models.User{
					ID: 7, ExternalID: "user_123", FirstName: "Jane", LastName: "Doe", Email: "old@example.com",
				}, nil)
				userRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)
			},
			check: func(t *testing.T, user *models.User) {
				assert.Equal(t, "jane@example.com", user.Email)
			},
		},
		{
			name:       "nil identity is unauthorized",
			ident:      nil,
			setupMocks: func(userRepo *MockUserRepository) {},
			wantKind:   service.KindUnauthorized,
		},
		{
			name:  "store failure is masked",
			ident: ident,
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByExternalID", "user_123").Return(nil, assert.AnError)
			},
			wantKind: service.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMocks(userRepo)

			userService := service.NewUserService(userRepo, testLogger())
			user, err := userService.SyncUser(tt.ident)

			if tt.check == nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, service.KindOf(err))
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				tt.check(t, user)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_SyncUser_MaskedStoreFailure(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByExternalID", "user_123").Return(nil, assert.AnError)

	userService := service.NewUserService(userRepo, testLogger())
	user, err := userService.SyncUser(&identity.Identity{ExternalID: "user_123"})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, service.KindUnknown, service.KindOf(err))
	// Generic message, original cause only reachable through Unwrap
	assert.Equal(t, "could not sync user", err.Error())
}

func TestUserService_ResolveUser(t *testing.T) {
	t.Run("empty external id is unauthorized", func(t *testing.T) {
		userService := service.NewUserService(new(MockUserRepository), testLogger())

		user, err := userService.ResolveUser("")
		require.Error(t, err)
		assert.Nil(t, user)
		assert.Equal(t, service.KindUnauthorized, service.KindOf(err))
	})

	t.Run("missing record is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByExternalID", "user_missing").Return(nil, repository.ErrUserNotFound)

		userService := service.NewUserService(userRepo, testLogger())
		user, err := userService.ResolveUser("user_missing")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.Equal(t, service.KindUnauthorized, service.KindOf(err))
	})

	t.Run("existing record resolves", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByExternalID", "user_123").Return(&models.User{ID: 9, ExternalID: "user_123"}, nil)

		userService := service.NewUserService(userRepo, testLogger())
		user, err := userService.ResolveUser("user_123")

		require.NoError(t, err)
		assert.Equal(t, uint(9), user.ID)
	})
}
