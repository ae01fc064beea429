package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"levelup_backend/internal/model"
	"levelup_backend/internal/questpool"
	"levelup_backend/internal/repository"

	"github.com/google/uuid"
)

// BMI tiers for the personalized daily quest.
const (
	bmiUnderweight = 18.5
	bmiOverweight  = 25.0
)

type QuestService struct {
	repo QuestRepository
}

func NewQuestService(repo QuestRepository) *QuestService {
	return &QuestService{
		repo: repo,
	}
}

// Refresh regenerates every quest period whose window has elapsed. Within a
// window it is a no-op: the due check runs here against the user's
// timestamps and again inside the repository transaction under a row lock,
// so overlapping refreshes cannot regenerate the same period twice.
func (s *QuestService) Refresh(ctx context.Context, userID int64) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	now := time.Now().UTC()
	batches := buildBatches(user, now)
	if len(batches) == 0 {
		return nil
	}

	err = s.repo.RegenerateQuests(ctx, userID, now, batches)
	if err != nil {
		return fmt.Errorf("failed to regenerate quests: %w", err)
	}

	return nil
}

func (s *QuestService) List(ctx context.Context, userID int64, period model.Period) ([]*model.Quest, error) {
	if period != "" && !period.Valid() {
		return nil, fmt.Errorf("%w: unknown period %q", ErrValidation, period)
	}

	quests, err := s.repo.ListQuests(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}

	return quests, nil
}

func (s *QuestService) Complete(ctx context.Context, userID, questID int64) (*model.QuestCompletion, error) {
	completion, err := s.repo.CompleteQuest(ctx, userID, questID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrQuestNotFound
		case errors.Is(err, repository.ErrAlreadyCompleted):
			return nil, ErrQuestAlreadyCompleted
		}
		return nil, fmt.Errorf("failed to complete quest: %w", err)
	}

	return completion, nil
}

func lastRegenerated(user *model.User, period model.Period) *time.Time {
	switch period {
	case model.PeriodWeekly:
		return user.LastWeeklyQuest
	case model.PeriodMonthly:
		return user.LastMonthlyQuest
	default:
		return user.LastDailyQuest
	}
}

func periodDue(user *model.User, period model.Period, now time.Time) bool {
	last := lastRegenerated(user, period)
	if last == nil {
		return true
	}
	return now.Sub(*last) >= questpool.Window(period)
}

// buildBatches assembles a fresh generation for every due period. Each
// batch carries its own id; the daily batch additionally gets the
// BMI-personalized quest when the user's biometrics are on file, deduped
// against the sampled titles of the same batch. Since the repository
// replaces a period's quests wholesale per batch, batch-local dedupe is all
// the idempotency the personalized quest needs.
func buildBatches(user *model.User, now time.Time) []model.QuestBatch {
	var batches []model.QuestBatch

	for _, period := range model.Periods {
		if !periodDue(user, period, now) {
			continue
		}

		templates := questpool.Sample(questpool.Pool(period), questpool.SampleCount(period))

		if period == model.PeriodDaily {
			if personalized, ok := personalizedDaily(user); ok && !containsTitle(templates, personalized.Title) {
				templates = append(templates, personalized)
			}
		}

		batch := model.QuestBatch{
			Period:      period,
			BatchID:     uuid.New(),
			GeneratedAt: now,
			Quests:      make([]model.Quest, len(templates)),
		}
		for i, tmpl := range templates {
			batch.Quests[i] = model.Quest{
				UserID:     user.ID,
				BatchID:    batch.BatchID,
				Title:      tmpl.Title,
				Category:   tmpl.Category,
				Period:     period,
				Difficulty: tmpl.Difficulty,
				XP:         tmpl.XP,
				CreatedAt:  now,
			}
		}

		batches = append(batches, batch)
	}

	return batches
}

func containsTitle(templates []questpool.Template, title string) bool {
	for _, tmpl := range templates {
		if tmpl.Title == title {
			return true
		}
	}
	return false
}

// personalizedDaily builds the BMI-tiered exercise quest. It is skipped
// when height or weight is missing or nonsensical.
func personalizedDaily(user *model.User) (questpool.Template, bool) {
	if user.HeightCm == nil || user.WeightKg == nil || *user.HeightCm <= 0 || *user.WeightKg <= 0 {
		return questpool.Template{}, false
	}

	heightM := *user.HeightCm / 100
	bmi := *user.WeightKg / (heightM * heightM)

	title, xp := "Standard Exercise", 10
	switch {
	case bmi < bmiUnderweight:
		title, xp = "Light Workout", 15
	case bmi > bmiOverweight:
		title, xp = "Moderate Cardio", 20
	}

	return questpool.Template{
		Title:      title,
		Category:   "Physical",
		Period:     model.PeriodDaily,
		Difficulty: "Medium",
		XP:         xp,
	}, true
}
