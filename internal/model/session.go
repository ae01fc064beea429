package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token     uuid.UUID
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}
