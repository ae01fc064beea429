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

// A study session earns one point per five minutes, at least one.
const studyMinutesPerPoint = 5

type StudyLogService struct {
	repo StudyLogRepository
}

func NewStudyLogService(repo StudyLogRepository) *StudyLogService {
	return &StudyLogService{
		repo: repo,
	}
}

// Add records a study session and awards its points. Returns the log, the
// points earned by this session and the user's total afterwards.
func (s *StudyLogService) Add(ctx context.Context, userID int64, subject string, duration int, notes, startedAt, endedAt string) (*model.StudyLog, int, int, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "Study"
	}
	if duration < 0 {
		return nil, 0, 0, fmt.Errorf("%w: duration must not be negative", ErrValidation)
	}

	earned := 1
	if duration > 0 {
		earned = duration / studyMinutesPerPoint
		if earned < 1 {
			earned = 1
		}
	}

	log := &model.StudyLog{
		UserID:    userID,
		Subject:   subject,
		Duration:  duration,
		Notes:     notes,
		StartedAt: startedAt,
		EndedAt:   endedAt,
		CreatedAt: time.Now().UTC(),
	}

	total, err := s.repo.CreateStudyLog(ctx, log, earned, earned/2)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, 0, ErrUserNotFound
		}
		return nil, 0, 0, fmt.Errorf("failed to create study log: %w", err)
	}

	return log, earned, total, nil
}

func (s *StudyLogService) List(ctx context.Context, userID int64) ([]*model.StudyLog, error) {
	logs, err := s.repo.ListStudyLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list study logs: %w", err)
	}
	return logs, nil
}

func (s *StudyLogService) Delete(ctx context.Context, userID, logID int64) error {
	err := s.repo.DeleteStudyLog(ctx, userID, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStudyLogNotFound
		}
		return fmt.Errorf("failed to delete study log: %w", err)
	}
	return nil
}
