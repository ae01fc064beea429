package model

import "time"

const DefaultQuote = "Stay focused. Keep leveling up."

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Quote        string
	Points       int
	Level        int
	Rank         string

	Age          *int
	HeightCm     *float64
	WeightKg     *float64
	FitnessLevel string

	Strength int
	Health   int
	Growth   int
	Wisdom   int
	Finance  int

	LastDailyQuest   *time.Time
	LastWeeklyQuest  *time.Time
	LastMonthlyQuest *time.Time

	RegistrationDate time.Time
}

// ProfileUpdate carries the editable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	Username     *string
	Quote        *string
	Age          *int
	HeightCm     *float64
	WeightKg     *float64
	FitnessLevel *string
}

type LeaderboardEntry struct {
	Username string
	Points   int
	Level    int
	Rank     string
}
