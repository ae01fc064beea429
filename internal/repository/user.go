package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"levelup_backend/internal/game"
	"levelup_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

type User struct {
	ID               int64      `db:"id"`
	Username         string     `db:"username"`
	PasswordHash     string     `db:"password_hash"`
	Quote            string     `db:"quote"`
	Points           int        `db:"points"`
	Level            int        `db:"level"`
	Rank             string     `db:"rank"`
	Age              *int       `db:"age"`
	HeightCm         *float64   `db:"height_cm"`
	WeightKg         *float64   `db:"weight_kg"`
	FitnessLevel     string     `db:"fitness_level"`
	Strength         int        `db:"strength"`
	Health           int        `db:"health"`
	Growth           int        `db:"growth"`
	Wisdom           int        `db:"wisdom"`
	Finance          int        `db:"finance"`
	LastDailyQuest   *time.Time `db:"last_daily_quest"`
	LastWeeklyQuest  *time.Time `db:"last_weekly_quest"`
	LastMonthlyQuest *time.Time `db:"last_monthly_quest"`
	RegistrationDate time.Time  `db:"registration_date"`
}

func (u *User) toModel() *model.User {
	return &model.User{
		ID:               u.ID,
		Username:         u.Username,
		PasswordHash:     u.PasswordHash,
		Quote:            u.Quote,
		Points:           u.Points,
		Level:            u.Level,
		Rank:             u.Rank,
		Age:              u.Age,
		HeightCm:         u.HeightCm,
		WeightKg:         u.WeightKg,
		FitnessLevel:     u.FitnessLevel,
		Strength:         u.Strength,
		Health:           u.Health,
		Growth:           u.Growth,
		Wisdom:           u.Wisdom,
		Finance:          u.Finance,
		LastDailyQuest:   u.LastDailyQuest,
		LastWeeklyQuest:  u.LastWeeklyQuest,
		LastMonthlyQuest: u.LastMonthlyQuest,
		RegistrationDate: u.RegistrationDate,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query, args, err := squirrel.
		Insert("users").
		SetMap(map[string]interface{}{
			"username":          user.Username,
			"password_hash":     user.PasswordHash,
			"quote":             user.Quote,
			"points":            user.Points,
			"level":             user.Level,
			"rank":              user.Rank,
			"registration_date": user.RegistrationDate,
		}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user insert query: %w", err)
	}

	err = r.db.GetContext(ctx, &user.ID, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	var user User
	query, args, err := squirrel.
		Select("*").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user.toModel(), nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user User
	query, args, err := squirrel.
		Select("*").
		From("users").
		Where(squirrel.Eq{"username": username}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user.toModel(), nil
}

func (r *Repository) getUserWithTx(ctx context.Context, tx *sqlx.Tx, userID int64, forUpdate bool) (*User, error) {
	builder := squirrel.
		Select("*").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var user User
	err = tx.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// awardPointsTx adds delta to the user's point total and recomputes level
// and rank from the new total in the same statement batch. Every points
// change in the system goes through here so level and rank can never go
// stale relative to points.
func (r *Repository) awardPointsTx(ctx context.Context, tx *sqlx.Tx, userID int64, delta int) (int, error) {
	user, err := r.getUserWithTx(ctx, tx, userID, true)
	if err != nil {
		return 0, err
	}

	newPoints := user.Points + delta
	if newPoints < 0 {
		newPoints = 0
	}

	updateQuery, updateArgs, err := squirrel.
		Update("users").
		SetMap(map[string]interface{}{
			"points": newPoints,
			"level":  game.LevelFor(newPoints),
			"rank":   game.RankFor(newPoints),
		}).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		return 0, err
	}

	return newPoints, nil
}

var attributeColumns = map[string]bool{
	"strength": true,
	"health":   true,
	"growth":   true,
	"wisdom":   true,
	"finance":  true,
}

// bumpAttributeTx adds delta to one of the base attribute columns.
func (r *Repository) bumpAttributeTx(ctx context.Context, tx *sqlx.Tx, userID int64, column string, delta int) error {
	if !attributeColumns[column] {
		return fmt.Errorf("unknown attribute column: %s", column)
	}
	if delta == 0 {
		return nil
	}

	query, args, err := squirrel.
		Update("users").
		Set(column, squirrel.Expr(column+" + ?", delta)).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// AddPoints awards a raw point delta (mini-games, manual score updates) and
// returns the user's game state after the award.
func (r *Repository) AddPoints(ctx context.Context, userID int64, delta int) (int, error) {
	var newPoints int
	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		points, err := r.awardPointsTx(ctx, tx, userID, delta)
		if err != nil {
			return err
		}
		newPoints = points
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newPoints, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, userID int64, update model.ProfileUpdate) error {
	fields := map[string]interface{}{}
	if update.Username != nil {
		fields["username"] = *update.Username
	}
	if update.Quote != nil {
		fields["quote"] = *update.Quote
	}
	if update.Age != nil {
		fields["age"] = *update.Age
	}
	if update.HeightCm != nil {
		fields["height_cm"] = *update.HeightCm
	}
	if update.WeightKg != nil {
		fields["weight_kg"] = *update.WeightKg
	}
	if update.FitnessLevel != nil {
		fields["fitness_level"] = *update.FitnessLevel
	}
	if len(fields) == 0 {
		return nil
	}

	query, args, err := squirrel.
		Update("users").
		SetMap(fields).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
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

// ActivityCounts returns the completed-activity counts feeding stat
// derivation.
func (r *Repository) ActivityCounts(ctx context.Context, userID int64) (game.ActivityCounts, error) {
	var counts game.ActivityCounts

	type countQuery struct {
		dst   *int
		table string
		where squirrel.Sqlizer
	}
	queries := []countQuery{
		{&counts.CompletedTasks, "tasks", squirrel.Eq{"user_id": userID, "completed": true}},
		{&counts.StudyLogs, "study_logs", squirrel.Eq{"user_id": userID}},
		{&counts.CompletedQuests, "quests", squirrel.Eq{"user_id": userID, "completed": true}},
	}

	for _, q := range queries {
		query, args, err := squirrel.
			Select("COUNT(*)").
			From(q.table).
			Where(q.where).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return game.ActivityCounts{}, err
		}

		err = r.db.GetContext(ctx, q.dst, query, args...)
		if err != nil {
			return game.ActivityCounts{}, fmt.Errorf("failed to count %s: %w", q.table, err)
		}
	}

	return counts, nil
}

func (r *Repository) GetTopUsers(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error) {
	query, args, err := squirrel.
		Select("username", "points", "level", "rank").
		From("users").
		OrderBy("points DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Username string `db:"username"`
		Points   int    `db:"points"`
		Level    int    `db:"level"`
		Rank     string `db:"rank"`
	}
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = &model.LeaderboardEntry{
			Username: row.Username,
			Points:   row.Points,
			Level:    row.Level,
			Rank:     row.Rank,
		}
	}

	return entries, nil
}

// ListUserIDs feeds the background regeneration sweep.
func (r *Repository) ListUserIDs(ctx context.Context) ([]int64, error) {
	query, args, err := squirrel.
		Select("id").
		From("users").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []int64
	err = r.db.SelectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// DeleteUser removes the user; tasks, quests, study logs and sessions go
// with it via the schema's cascade rules.
func (r *Repository) DeleteUser(ctx context.Context, userID int64) error {
	query, args, err := squirrel.
		Delete("users").
		Where(squirrel.Eq{"id": userID}).
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
