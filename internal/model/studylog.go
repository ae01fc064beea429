package model

import "time"

type StudyLog struct {
	ID        int64
	UserID    int64
	Subject   string
	Duration  int
	Notes     string
	StartedAt string
	EndedAt   string
	CreatedAt time.Time
}
