package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
)

const (
	TaskCompletionXP   = 10
	TaskStrengthBonus  = 2
	maxTaskTitleLength = 150
)

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

func (s *TaskService) Create(ctx context.Context, userID int64, title, description string, alarmTime *time.Time) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	if len(title) > maxTaskTitleLength {
		return nil, fmt.Errorf("%w: title too long", ErrValidation)
	}

	task := &model.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		AlarmTime:   alarmTime,
	}

	err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]*model.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Rename(ctx context.Context, userID, taskID int64, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title required", ErrValidation)
	}

	err := s.repo.UpdateTaskTitle(ctx, userID, taskID, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to rename task: %w", err)
	}

	return nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	err := s.repo.DeleteTask(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Complete marks the task done and awards its flat reward. Returns the
// point total after the award.
func (s *TaskService) Complete(ctx context.Context, userID, taskID int64) (int, error) {
	points, err := s.repo.CompleteTask(ctx, userID, taskID, TaskCompletionXP, TaskStrengthBonus)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return 0, ErrTaskNotFound
		case errors.Is(err, repository.ErrAlreadyCompleted):
			return 0, ErrTaskAlreadyCompleted
		}
		return 0, fmt.Errorf("failed to complete task: %w", err)
	}

	return points, nil
}
