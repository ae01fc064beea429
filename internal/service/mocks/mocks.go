// Package mocks holds testify mocks for the repository interfaces consumed
// by the service layer.
package mocks

import (
	"context"
	"time"

	"levelup_backend/internal/game"
	"levelup_backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID int64, update model.ProfileUpdate) error {
	args := m.Called(ctx, userID, update)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) AddPoints(ctx context.Context, userID int64, delta int) (int, error) {
	args := m.Called(ctx, userID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) ActivityCounts(ctx context.Context, userID int64) (game.ActivityCounts, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(game.ActivityCounts), args.Error(1)
}

func (m *MockUserRepository) GetTopUsers(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LeaderboardEntry), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSessionUser(ctx context.Context, token uuid.UUID) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, token uuid.UUID) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockQuestRepository) ListQuests(ctx context.Context, userID int64, period model.Period) ([]*model.Quest, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Quest), args.Error(1)
}

func (m *MockQuestRepository) RegenerateQuests(ctx context.Context, userID int64, now time.Time, batches []model.QuestBatch) error {
	args := m.Called(ctx, userID, now, batches)
	return args.Error(0)
}

func (m *MockQuestRepository) CompleteQuest(ctx context.Context, userID, questID int64) (*model.QuestCompletion, error) {
	args := m.Called(ctx, userID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestCompletion), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, userID int64) ([]*model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTaskTitle(ctx context.Context, userID, taskID int64, title string) error {
	args := m.Called(ctx, userID, taskID, title)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

func (m *MockTaskRepository) CompleteTask(ctx context.Context, userID, taskID int64, awardPoints, awardStrength int) (int, error) {
	args := m.Called(ctx, userID, taskID, awardPoints, awardStrength)
	return args.Int(0), args.Error(1)
}

type MockStudyLogRepository struct {
	mock.Mock
}

func (m *MockStudyLogRepository) CreateStudyLog(ctx context.Context, log *model.StudyLog, awardPoints, awardWisdom int) (int, error) {
	args := m.Called(ctx, log, awardPoints, awardWisdom)
	return args.Int(0), args.Error(1)
}

func (m *MockStudyLogRepository) ListStudyLogs(ctx context.Context, userID int64) ([]*model.StudyLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.StudyLog), args.Error(1)
}

func (m *MockStudyLogRepository) DeleteStudyLog(ctx context.Context, userID, logID int64) error {
	args := m.Called(ctx, userID, logID)
	return args.Error(0)
}
