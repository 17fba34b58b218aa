package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the single locally-persisted login state. It is loaded at
// startup, saved on login and register, and cleared on logout.
type Session struct {
	UserID    uuid.UUID
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
