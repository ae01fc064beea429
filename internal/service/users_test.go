package service

import (
	"context"
	"testing"
	"time"

	"levelup_backend/internal/game"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(repo *mocks.MockUserRepository, sessions *mocks.MockSessionRepository) *UserService {
	return NewUserService(repo, sessions, 24*time.Hour)
}

func TestUserService_Register(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	mockSessions := &mocks.MockSessionRepository{}
	service := newUserService(mockRepo, mockSessions)

	tests := []struct {
		name          string
		username      string
		password      string
		quote         string
		mockSetup     func()
		expectedError error
		check         func(*testing.T, *model.User)
	}{
		{
			name:          "Empty username",
			username:      "   ",
			password:      "secret",
			mockSetup:     func() {},
			expectedError: ErrValidation,
		},
		{
			name:          "Empty password",
			username:      "hunter",
			password:      "",
			mockSetup:     func() {},
			expectedError: ErrValidation,
		},
		{
			name:     "Duplicate username",
			username: "hunter",
			password: "secret",
			mockSetup: func() {
				mockRepo.On("CreateUser", mock.Anything, mock.Anything).
					Return(repository.ErrAlreadyExists)
			},
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "Successful registration",
			username: "hunter",
			password: "secret",
			mockSetup: func() {
				mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Username == "hunter" &&
						u.Points == 0 &&
						u.Level == 1 &&
						u.Rank == "E" &&
						u.PasswordHash != "secret"
				})).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, model.DefaultQuote, u.Quote)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
			},
		},
		{
			name:     "Custom quote kept",
			username: "hunter2",
			password: "secret",
			quote:    "Arise.",
			mockSetup: func() {
				mockRepo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "Arise.", u.Quote)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			mockRepo.Calls = nil

			tt.mockSetup()

			user, err := service.Register(context.Background(), tt.username, tt.password, tt.quote)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	mockSessions := &mocks.MockSessionRepository{}
	service := newUserService(mockRepo, mockSessions)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	tests := []struct {
		name          string
		username      string
		password      string
		mockSetup     func()
		expectedError error
	}{
		{
			name:          "Empty credentials",
			username:      "",
			password:      "",
			mockSetup:     func() {},
			expectedError: ErrValidation,
		},
		{
			name:     "Unknown username",
			username: "ghost",
			password: "secret",
			mockSetup: func() {
				mockRepo.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			username: "hunter",
			password: "wrong",
			mockSetup: func() {
				mockRepo.On("GetUserByUsername", mock.Anything, "hunter").
					Return(&model.User{ID: 1, Username: "hunter", PasswordHash: string(hash)}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Successful login",
			username: "hunter",
			password: "secret",
			mockSetup: func() {
				mockRepo.On("GetUserByUsername", mock.Anything, "hunter").
					Return(&model.User{ID: 1, Username: "hunter", PasswordHash: string(hash)}, nil)

				mockSessions.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
					return s.UserID == 1 &&
						s.Token != uuid.Nil &&
						s.ExpiresAt.After(s.CreatedAt)
				})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			mockRepo.Calls = nil
			mockSessions.ExpectedCalls = nil
			mockSessions.Calls = nil

			tt.mockSetup()

			session, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, session)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	mockSessions := &mocks.MockSessionRepository{}
	service := newUserService(mockRepo, mockSessions)

	token := uuid.New()

	t.Run("Valid session", func(t *testing.T) {
		mockSessions.On("GetSessionUser", mock.Anything, token).
			Return(int64(42), nil).Once()

		userID, err := service.Authenticate(context.Background(), token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("Expired session", func(t *testing.T) {
		mockSessions.On("GetSessionUser", mock.Anything, token).
			Return(int64(0), repository.ErrSessionExpired).Once()

		_, err := service.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("Unknown session", func(t *testing.T) {
		mockSessions.On("GetSessionUser", mock.Anything, token).
			Return(int64(0), repository.ErrNotFound).Once()

		_, err := service.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	mockSessions := &mocks.MockSessionRepository{}
	service := newUserService(mockRepo, mockSessions)

	t.Run("Derives stats from live counts", func(t *testing.T) {
		mockRepo.On("GetUserByID", mock.Anything, int64(1)).
			Return(&model.User{ID: 1, Username: "hunter", Points: 300}, nil).Once()
		mockRepo.On("ActivityCounts", mock.Anything, int64(1)).
			Return(game.ActivityCounts{CompletedTasks: 4, StudyLogs: 2, CompletedQuests: 3}, nil).Once()

		user, stats, err := service.GetProfile(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "hunter", user.Username)
		assert.Equal(t, game.DeriveStats(300, game.ActivityCounts{
			CompletedTasks: 4, StudyLogs: 2, CompletedQuests: 3,
		}), stats)
	})

	t.Run("User not found", func(t *testing.T) {
		mockRepo.On("GetUserByID", mock.Anything, int64(2)).
			Return(nil, repository.ErrNotFound).Once()

		_, _, err := service.GetProfile(context.Background(), 2)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_AddPoints(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	mockSessions := &mocks.MockSessionRepository{}
	service := newUserService(mockRepo, mockSessions)

	t.Run("Negative delta rejected", func(t *testing.T) {
		_, err := service.AddPoints(context.Background(), 1, -5)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Award", func(t *testing.T) {
		mockRepo.On("AddPoints", mock.Anything, int64(1), 25).
			Return(125, nil).Once()

		total, err := service.AddPoints(context.Background(), 1, 25)
		assert.NoError(t, err)
		assert.Equal(t, 125, total)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	mockSessions := &mocks.MockSessionRepository{}
	service := newUserService(mockRepo, mockSessions)

	t.Run("Blank username rejected", func(t *testing.T) {
		blank := "   "
		err := service.UpdateProfile(context.Background(), 1, model.ProfileUpdate{Username: &blank})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Username conflict", func(t *testing.T) {
		name := "taken"
		mockRepo.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
			Return(repository.ErrAlreadyExists).Once()

		err := service.UpdateProfile(context.Background(), 1, model.ProfileUpdate{Username: &name})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}
