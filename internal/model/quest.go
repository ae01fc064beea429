package model

import (
	"time"

	"github.com/google/uuid"
)

// Period is the regeneration cadence of a quest.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Periods lists all quest periods in regeneration order.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

type Quest struct {
	ID         int64
	UserID     int64
	BatchID    uuid.UUID
	Title      string
	Category   string
	Period     Period
	Difficulty string
	XP         int
	Completed  bool
	CreatedAt  time.Time
}

// QuestBatch is one generation of quests for a single period. All quests in
// a batch share BatchID and replace the period's previous generation as a
// whole.
type QuestBatch struct {
	Period      Period
	BatchID     uuid.UUID
	GeneratedAt time.Time
	Quests      []Quest
}

// QuestCompletion is the result of marking a quest complete: the quest that
// was completed and the user's point total after the XP award.
type QuestCompletion struct {
	QuestID int64
	Points  int
	Level   int
	Rank    string
}
