package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"levelup_backend/internal/game"
	"levelup_backend/internal/model"
	"levelup_backend/internal/questpool"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Quest struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	BatchID    uuid.UUID `db:"batch_id"`
	Title      string    `db:"title"`
	Category   string    `db:"category"`
	Period     string    `db:"period"`
	Difficulty string    `db:"difficulty"`
	XP         int       `db:"xp"`
	Completed  bool      `db:"completed"`
	CreatedAt  time.Time `db:"created_at"`
}

func (q *Quest) toModel() *model.Quest {
	return &model.Quest{
		ID:         q.ID,
		UserID:     q.UserID,
		BatchID:    q.BatchID,
		Title:      q.Title,
		Category:   q.Category,
		Period:     model.Period(q.Period),
		Difficulty: q.Difficulty,
		XP:         q.XP,
		Completed:  q.Completed,
		CreatedAt:  q.CreatedAt,
	}
}

func timestampColumn(period model.Period) string {
	switch period {
	case model.PeriodWeekly:
		return "last_weekly_quest"
	case model.PeriodMonthly:
		return "last_monthly_quest"
	default:
		return "last_daily_quest"
	}
}

func lastRegenerated(user *User, period model.Period) *time.Time {
	switch period {
	case model.PeriodWeekly:
		return user.LastWeeklyQuest
	case model.PeriodMonthly:
		return user.LastMonthlyQuest
	default:
		return user.LastDailyQuest
	}
}

// ListQuests returns the user's quests newest first, optionally filtered by
// period. An empty period means all periods.
func (r *Repository) ListQuests(ctx context.Context, userID int64, period model.Period) ([]*model.Quest, error) {
	builder := squirrel.
		Select("*").
		From("quests").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if period != "" {
		builder = builder.Where(squirrel.Eq{"period": string(period)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var quests []Quest
	err = r.db.SelectContext(ctx, &quests, query, args...)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Quest, len(quests))
	for i := range quests {
		out[i] = quests[i].toModel()
	}

	return out, nil
}

// RegenerateQuests replaces quest generations in one transaction. The user
// row is locked and each batch's due-ness is re-checked under the lock, so
// a refresh racing another refresh applies nothing twice: the loser sees the
// fresh timestamp and skips the period. A batch that is applied deletes the
// period's previous quests, inserts the new generation and stamps the
// period's regeneration time, all or nothing across every period.
func (r *Repository) RegenerateQuests(ctx context.Context, userID int64, now time.Time, batches []model.QuestBatch) error {
	if len(batches) == 0 {
		return nil
	}

	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		user, err := r.getUserWithTx(ctx, tx, userID, true)
		if err != nil {
			return err
		}

		for _, batch := range batches {
			last := lastRegenerated(user, batch.Period)
			if last != nil && now.Sub(*last) < questpool.Window(batch.Period) {
				continue
			}

			deleteQuery, deleteArgs, err := squirrel.
				Delete("quests").
				Where(squirrel.Eq{"user_id": userID, "period": string(batch.Period)}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build quest delete query: %w", err)
			}

			_, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...)
			if err != nil {
				return fmt.Errorf("failed to delete %s quests: %w", batch.Period, err)
			}

			if len(batch.Quests) > 0 {
				builder := squirrel.
					Insert("quests").
					Columns("user_id", "batch_id", "title", "category", "period", "difficulty", "xp", "created_at")

				for _, quest := range batch.Quests {
					builder = builder.Values(
						userID,
						batch.BatchID,
						quest.Title,
						quest.Category,
						string(batch.Period),
						quest.Difficulty,
						quest.XP,
						batch.GeneratedAt,
					)
				}

				insertQuery, insertArgs, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
				if err != nil {
					return fmt.Errorf("failed to build quest insert query: %w", err)
				}

				_, err = tx.ExecContext(ctx, insertQuery, insertArgs...)
				if err != nil {
					return fmt.Errorf("failed to insert %s quests: %w", batch.Period, err)
				}
			}

			stampQuery, stampArgs, err := squirrel.
				Update("users").
				Set(timestampColumn(batch.Period), batch.GeneratedAt).
				Where(squirrel.Eq{"id": userID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build regeneration stamp query: %w", err)
			}

			_, err = tx.ExecContext(ctx, stampQuery, stampArgs...)
			if err != nil {
				return fmt.Errorf("failed to stamp %s regeneration: %w", batch.Period, err)
			}
		}

		return nil
	})
}

// CompleteQuest flips the quest's completed flag, awards its XP and
// recomputes level and rank, all in one transaction. A quest owned by a
// different user is reported as ErrNotFound, indistinguishable from a
// missing one.
func (r *Repository) CompleteQuest(ctx context.Context, userID, questID int64) (*model.QuestCompletion, error) {
	var completion *model.QuestCompletion

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Select("id", "xp", "completed").
			From("quests").
			Where(squirrel.Eq{"id": questID, "user_id": userID}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		var quest struct {
			ID        int64 `db:"id"`
			XP        int   `db:"xp"`
			Completed bool  `db:"completed"`
		}
		err = tx.GetContext(ctx, &quest, query, args...)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		if quest.Completed {
			return ErrAlreadyCompleted
		}

		updateQuery, updateArgs, err := squirrel.
			Update("quests").
			Set("completed", true).
			Where(squirrel.Eq{"id": questID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, updateQuery, updateArgs...)
		if err != nil {
			return err
		}

		points, err := r.awardPointsTx(ctx, tx, userID, quest.XP)
		if err != nil {
			return err
		}

		completion = &model.QuestCompletion{
			QuestID: questID,
			Points:  points,
			Level:   game.LevelFor(points),
			Rank:    game.RankFor(points),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return completion, nil
}
