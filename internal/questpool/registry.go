// Package questpool is the static catalog of quest templates and the
// sampling rules used when a user's quests regenerate. Templates are
// read-only; they are sampled from, never mutated.
package questpool

import (
	"time"

	"levelup_backend/internal/model"
)

// Template is an immutable quest blueprint.
type Template struct {
	Title      string
	Category   string
	Period     model.Period
	Difficulty string
	XP         int
}

const (
	DailyWindow   = 24 * time.Hour
	WeeklyWindow  = 7 * 24 * time.Hour
	MonthlyWindow = 30 * 24 * time.Hour
)

const (
	DailyCount   = 3
	WeeklyCount  = 2
	MonthlyCount = 1
)

// Window returns the minimum elapsed time before a period's quests are
// replaced.
func Window(period model.Period) time.Duration {
	switch period {
	case model.PeriodWeekly:
		return WeeklyWindow
	case model.PeriodMonthly:
		return MonthlyWindow
	default:
		return DailyWindow
	}
}

// SampleCount returns how many quests one generation of the period holds.
func SampleCount(period model.Period) int {
	switch period {
	case model.PeriodWeekly:
		return WeeklyCount
	case model.PeriodMonthly:
		return MonthlyCount
	default:
		return DailyCount
	}
}

// Pool returns the template catalog for the period.
func Pool(period model.Period) []Template {
	switch period {
	case model.PeriodWeekly:
		return weeklyPool
	case model.PeriodMonthly:
		return monthlyPool
	default:
		return dailyPool
	}
}
