package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"levelup_backend/internal/game"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const leaderboardSize = 100

type UserService struct {
	repo       UserRepository
	sessions   SessionRepository
	sessionTTL time.Duration
}

func NewUserService(repo UserRepository, sessions SessionRepository, sessionTTL time.Duration) *UserService {
	return &UserService{
		repo:       repo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (s *UserService) Register(ctx context.Context, username, password, quote string) (*model.User, error) {
	username = strings.TrimSpace(username)
	quote = strings.TrimSpace(quote)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}
	if quote == "" {
		quote = model.DefaultQuote
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:         username,
		PasswordHash:     string(hash),
		Quote:            quote,
		Points:           0,
		Level:            game.LevelFor(0),
		Rank:             game.RankFor(0),
		FitnessLevel:     "Beginner",
		RegistrationDate: time.Now().UTC(),
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*model.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := &model.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	err = s.sessions.CreateSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (s *UserService) Logout(ctx context.Context, token uuid.UUID) error {
	err := s.sessions.DeleteSession(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Authenticate resolves a session token to the user id that owns it.
func (s *UserService) Authenticate(ctx context.Context, token uuid.UUID) (int64, error) {
	userID, err := s.sessions.GetSessionUser(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return 0, ErrSessionInvalid
		}
		return 0, fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, nil
}

// GetProfile returns the user with its derived stats. Stats come from live
// counts so they are always consistent with current activity.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.User, game.Stats, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, game.Stats{}, ErrUserNotFound
		}
		return nil, game.Stats{}, fmt.Errorf("failed to get user: %w", err)
	}

	counts, err := s.repo.ActivityCounts(ctx, userID)
	if err != nil {
		return nil, game.Stats{}, fmt.Errorf("failed to count activity: %w", err)
	}

	return user, game.DeriveStats(user.Points, counts), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, update model.ProfileUpdate) error {
	if update.Username != nil {
		trimmed := strings.TrimSpace(*update.Username)
		if trimmed == "" {
			return fmt.Errorf("%w: username must not be empty", ErrValidation)
		}
		update.Username = &trimmed
	}

	err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return ErrUsernameTaken
		case errors.Is(err, repository.ErrNotFound):
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	err := s.repo.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// AddPoints awards a raw score delta from the mini-games.
func (s *UserService) AddPoints(ctx context.Context, userID int64, delta int) (int, error) {
	if delta < 0 {
		return 0, fmt.Errorf("%w: score must not be negative", ErrValidation)
	}

	points, err := s.repo.AddPoints(ctx, userID, delta)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to add points: %w", err)
	}

	return points, nil
}

func (s *UserService) GetLeaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	entries, err := s.repo.GetTopUsers(ctx, leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}
	return entries, nil
}
