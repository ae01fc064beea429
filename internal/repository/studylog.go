package repository

import (
	"context"
	"fmt"
	"time"

	"levelup_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type StudyLog struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Subject   string    `db:"subject"`
	Duration  int       `db:"duration"`
	Notes     string    `db:"notes"`
	StartedAt string    `db:"started_at"`
	EndedAt   string    `db:"ended_at"`
	CreatedAt time.Time `db:"created_at"`
}

func (l *StudyLog) toModel() *model.StudyLog {
	return &model.StudyLog{
		ID:        l.ID,
		UserID:    l.UserID,
		Subject:   l.Subject,
		Duration:  l.Duration,
		Notes:     l.Notes,
		StartedAt: l.StartedAt,
		EndedAt:   l.EndedAt,
		CreatedAt: l.CreatedAt,
	}
}

// CreateStudyLog inserts the log and awards the session's points plus a
// wisdom bump atomically. Returns the point total after the award.
func (r *Repository) CreateStudyLog(ctx context.Context, log *model.StudyLog, awardPoints, awardWisdom int) (int, error) {
	var newPoints int

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Insert("study_logs").
			SetMap(map[string]interface{}{
				"user_id":    log.UserID,
				"subject":    log.Subject,
				"duration":   log.Duration,
				"notes":      log.Notes,
				"started_at": log.StartedAt,
				"ended_at":   log.EndedAt,
				"created_at": log.CreatedAt,
			}).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build study log insert query: %w", err)
		}

		err = tx.GetContext(ctx, &log.ID, query, args...)
		if err != nil {
			return fmt.Errorf("failed to insert study log: %w", err)
		}

		newPoints, err = r.awardPointsTx(ctx, tx, log.UserID, awardPoints)
		if err != nil {
			return err
		}

		return r.bumpAttributeTx(ctx, tx, log.UserID, "wisdom", awardWisdom)
	})
	if err != nil {
		return 0, err
	}

	return newPoints, nil
}

func (r *Repository) ListStudyLogs(ctx context.Context, userID int64) ([]*model.StudyLog, error) {
	query, args, err := squirrel.
		Select("*").
		From("study_logs").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var logs []StudyLog
	err = r.db.SelectContext(ctx, &logs, query, args...)
	if err != nil {
		return nil, err
	}

	out := make([]*model.StudyLog, len(logs))
	for i := range logs {
		out[i] = logs[i].toModel()
	}

	return out, nil
}

func (r *Repository) DeleteStudyLog(ctx context.Context, userID, logID int64) error {
	query, args, err := squirrel.
		Delete("study_logs").
		Where(squirrel.Eq{"id": logID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
