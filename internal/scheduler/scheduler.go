// Package scheduler runs the background quest regeneration sweep. User-facing
// reads already regenerate lazily; the sweep keeps quest boards fresh for
// users who have not opened the app since their window elapsed.
package scheduler

import (
	"context"
	"time"

	"levelup_backend/internal/service"
	"levelup_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/go-co-op/gocron"
)

// UserLister exposes the id sweep the scheduler iterates over.
type UserLister interface {
	ListUserIDs(ctx context.Context) ([]int64, error)
}

type Scheduler struct {
	cron   *gocron.Scheduler
	users  UserLister
	quests service.QuestServiceI
}

func New(users UserLister, quests service.QuestServiceI) *Scheduler {
	return &Scheduler{
		cron:   gocron.NewScheduler(time.UTC),
		users:  users,
		quests: quests,
	}
}

// Start schedules the sweep at the given interval and returns immediately.
func (s *Scheduler) Start(interval time.Duration) error {
	_, err := s.cron.Every(interval).Do(s.sweep)
	if err != nil {
		return err
	}

	s.cron.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sweep() {
	log := logger.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ids, err := s.users.ListUserIDs(ctx)
	if err != nil {
		log.Error("quest sweep failed to list users", zap.Error(err))
		return
	}

	var failed int
	for _, id := range ids {
		if err := s.quests.Refresh(ctx, id); err != nil {
			failed++
			log.Error("quest sweep failed for user",
				zap.Int64("user_id", id),
				zap.Error(err))
		}
	}

	log.Info("quest sweep finished",
		zap.Int("users", len(ids)),
		zap.Int("failed", failed))
}
