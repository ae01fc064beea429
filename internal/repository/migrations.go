package repository

import "context"

// schema is applied on startup. Per-user records hang off users with
// ON DELETE CASCADE so deleting a user removes its tasks, quests, study
// logs and sessions in one statement.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username VARCHAR(100) NOT NULL UNIQUE,
    password_hash VARCHAR(200) NOT NULL,
    quote VARCHAR(300) NOT NULL DEFAULT 'Stay focused. Keep leveling up.',
    points INTEGER NOT NULL DEFAULT 0,
    level INTEGER NOT NULL DEFAULT 1,
    rank VARCHAR(50) NOT NULL DEFAULT 'E',
    age INTEGER,
    height_cm DOUBLE PRECISION,
    weight_kg DOUBLE PRECISION,
    fitness_level VARCHAR(50) NOT NULL DEFAULT 'Beginner',
    strength INTEGER NOT NULL DEFAULT 50,
    health INTEGER NOT NULL DEFAULT 50,
    growth INTEGER NOT NULL DEFAULT 50,
    wisdom INTEGER NOT NULL DEFAULT 50,
    finance INTEGER NOT NULL DEFAULT 50,
    last_daily_quest TIMESTAMPTZ,
    last_weekly_quest TIMESTAMPTZ,
    last_monthly_quest TIMESTAMPTZ,
    registration_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_points CHECK (points >= 0)
);

CREATE TABLE IF NOT EXISTS sessions (
    token UUID PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    expires_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title VARCHAR(150) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    alarm_time TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS study_logs (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    subject VARCHAR(100) NOT NULL,
    duration INTEGER NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    started_at VARCHAR(50) NOT NULL DEFAULT '',
    ended_at VARCHAR(50) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS quests (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    batch_id UUID NOT NULL,
    title VARCHAR(255) NOT NULL,
    category VARCHAR(50) NOT NULL,
    period VARCHAR(50) NOT NULL,
    difficulty VARCHAR(50) NOT NULL,
    xp INTEGER NOT NULL DEFAULT 10,
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_xp CHECK (xp > 0),
    CONSTRAINT valid_period CHECK (period IN ('daily', 'weekly', 'monthly'))
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_created ON tasks(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_study_logs_user_created ON study_logs(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_quests_user_period ON quests(user_id, period);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
CREATE INDEX IF NOT EXISTS idx_users_points ON users(points DESC);
`

// Migrate creates the schema when it does not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}
