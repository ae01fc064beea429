package service

import (
	"context"
	"errors"
	"time"

	"levelup_backend/internal/game"
	"levelup_backend/internal/model"

	"github.com/google/uuid"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUsernameTaken         = errors.New("username already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrQuestNotFound         = errors.New("quest not found")
	ErrQuestAlreadyCompleted = errors.New("quest already completed")
	ErrTaskNotFound          = errors.New("task not found")
	ErrTaskAlreadyCompleted  = errors.New("task already completed")
	ErrStudyLogNotFound      = errors.New("study log not found")
	ErrSessionInvalid        = errors.New("session invalid or expired")
)

type Service struct {
	*UserService
	*QuestService
	*TaskService
	*StudyLogService
	*AssistantService
	*ChatService
}

func NewService(
	userService *UserService,
	questService *QuestService,
	taskService *TaskService,
	studyLogService *StudyLogService,
	assistantService *AssistantService,
	chatService *ChatService,
) *Service {
	return &Service{
		UserService:      userService,
		QuestService:     questService,
		TaskService:      taskService,
		StudyLogService:  studyLogService,
		AssistantService: assistantService,
		ChatService:      chatService,
	}
}

type UserServiceI interface {
	Register(ctx context.Context, username, password, quote string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.Session, error)
	Logout(ctx context.Context, token uuid.UUID) error
	Authenticate(ctx context.Context, token uuid.UUID) (int64, error)
	GetProfile(ctx context.Context, userID int64) (*model.User, game.Stats, error)
	UpdateProfile(ctx context.Context, userID int64, update model.ProfileUpdate) error
	DeleteAccount(ctx context.Context, userID int64) error
	AddPoints(ctx context.Context, userID int64, delta int) (int, error)
	GetLeaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error)
}

type QuestServiceI interface {
	Refresh(ctx context.Context, userID int64) error
	List(ctx context.Context, userID int64, period model.Period) ([]*model.Quest, error)
	Complete(ctx context.Context, userID, questID int64) (*model.QuestCompletion, error)
}

type TaskServiceI interface {
	Create(ctx context.Context, userID int64, title, description string, alarmTime *time.Time) (*model.Task, error)
	List(ctx context.Context, userID int64) ([]*model.Task, error)
	Rename(ctx context.Context, userID, taskID int64, title string) error
	Delete(ctx context.Context, userID, taskID int64) error
	Complete(ctx context.Context, userID, taskID int64) (int, error)
}

type StudyLogServiceI interface {
	Add(ctx context.Context, userID int64, subject string, duration int, notes, startedAt, endedAt string) (*model.StudyLog, int, int, error)
	List(ctx context.Context, userID int64) ([]*model.StudyLog, error)
	Delete(ctx context.Context, userID, logID int64) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, update model.ProfileUpdate) error
	DeleteUser(ctx context.Context, userID int64) error
	AddPoints(ctx context.Context, userID int64, delta int) (int, error)
	ActivityCounts(ctx context.Context, userID int64) (game.ActivityCounts, error)
	GetTopUsers(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSessionUser(ctx context.Context, token uuid.UUID) (int64, error)
	DeleteSession(ctx context.Context, token uuid.UUID) error
}

type QuestRepository interface {
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	ListQuests(ctx context.Context, userID int64, period model.Period) ([]*model.Quest, error)
	RegenerateQuests(ctx context.Context, userID int64, now time.Time, batches []model.QuestBatch) error
	CompleteQuest(ctx context.Context, userID, questID int64) (*model.QuestCompletion, error)
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *model.Task) error
	ListTasks(ctx context.Context, userID int64) ([]*model.Task, error)
	UpdateTaskTitle(ctx context.Context, userID, taskID int64, title string) error
	DeleteTask(ctx context.Context, userID, taskID int64) error
	CompleteTask(ctx context.Context, userID, taskID int64, awardPoints, awardStrength int) (int, error)
}

type StudyLogRepository interface {
	CreateStudyLog(ctx context.Context, log *model.StudyLog, awardPoints, awardWisdom int) (int, error)
	ListStudyLogs(ctx context.Context, userID int64) ([]*model.StudyLog, error)
	DeleteStudyLog(ctx context.Context, userID, logID int64) error
}
