package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"levelup_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type Session struct {
	Token     uuid.UUID `db:"token"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (r *Repository) CreateSession(ctx context.Context, session *model.Session) error {
	query, args, err := squirrel.
		Insert("sessions").
		SetMap(map[string]interface{}{
			"token":      session.Token,
			"user_id":    session.UserID,
			"created_at": session.CreatedAt,
			"expires_at": session.ExpiresAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

// GetSessionUser resolves a bearer token to a user id. Expired sessions are
// deleted on sight and reported as ErrSessionExpired.
func (r *Repository) GetSessionUser(ctx context.Context, token uuid.UUID) (int64, error) {
	query, args, err := squirrel.
		Select("token", "user_id", "created_at", "expires_at").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var session Session
	err = r.db.GetContext(ctx, &session, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		_ = r.DeleteSession(ctx, token)
		return 0, ErrSessionExpired
	}

	return session.UserID, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token uuid.UUID) error {
	query, args, err := squirrel.
		Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
