package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"levelup_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type Task struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Completed   bool       `db:"completed"`
	CreatedAt   time.Time  `db:"created_at"`
	AlarmTime   *time.Time `db:"alarm_time"`
}

func (t *Task) toModel() *model.Task {
	return &model.Task{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		AlarmTime:   t.AlarmTime,
	}
}

func (r *Repository) CreateTask(ctx context.Context, task *model.Task) error {
	query, args, err := squirrel.
		Insert("tasks").
		SetMap(map[string]interface{}{
			"user_id":     task.UserID,
			"title":       task.Title,
			"description": task.Description,
			"created_at":  task.CreatedAt,
			"alarm_time":  task.AlarmTime,
		}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build task insert query: %w", err)
	}

	err = r.db.GetContext(ctx, &task.ID, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

func (r *Repository) ListTasks(ctx context.Context, userID int64) ([]*model.Task, error) {
	query, args, err := squirrel.
		Select("*").
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var tasks []Task
	err = r.db.SelectContext(ctx, &tasks, query, args...)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].toModel()
	}

	return out, nil
}

func (r *Repository) UpdateTaskTitle(ctx context.Context, userID, taskID int64, title string) error {
	query, args, err := squirrel.
		Update("tasks").
		Set("title", title).
		Where(squirrel.Eq{"id": taskID, "user_id": userID}).
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

func (r *Repository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	query, args, err := squirrel.
		Delete("tasks").
		Where(squirrel.Eq{"id": taskID, "user_id": userID}).
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

// CompleteTask marks the task done and awards points plus a strength bump
// in one transaction. Completion is one-way; a second call reports
// ErrAlreadyCompleted and changes nothing.
func (r *Repository) CompleteTask(ctx context.Context, userID, taskID int64, awardPoints, awardStrength int) (int, error) {
	var newPoints int

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Select("id", "completed").
			From("tasks").
			Where(squirrel.Eq{"id": taskID, "user_id": userID}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		var task struct {
			ID        int64 `db:"id"`
			Completed bool  `db:"completed"`
		}
		err = tx.GetContext(ctx, &task, query, args...)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		if task.Completed {
			return ErrAlreadyCompleted
		}

		updateQuery, updateArgs, err := squirrel.
			Update("tasks").
			Set("completed", true).
			Where(squirrel.Eq{"id": taskID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, updateQuery, updateArgs...)
		if err != nil {
			return err
		}

		newPoints, err = r.awardPointsTx(ctx, tx, userID, awardPoints)
		if err != nil {
			return err
		}

		return r.bumpAttributeTx(ctx, tx, userID, "strength", awardStrength)
	})
	if err != nil {
		return 0, err
	}

	return newPoints, nil
}
