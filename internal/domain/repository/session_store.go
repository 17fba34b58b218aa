package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"
)

// SessionStore persists the single local session object.
// Load returns (nil, nil) when no valid session is stored.
type SessionStore interface {
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}
