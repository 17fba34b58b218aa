package session

import (
	"context"
	"os"
	"path/filepath"

	"clinicconnect/config"
	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/pkg/sessiontoken"

	"github.com/sirupsen/logrus"
)

// FileStore persists the session object as a signed token in a single
// local file. An unreadable, tampered or expired file loads as "no
// session" rather than an error, so a stale file never locks the user out.
type FileStore struct {
	path   string
	tokens *sessiontoken.Service
	log    *logrus.Logger
}

func NewFileStore(cfg config.SessionConfig, tokens *sessiontoken.Service, log *logrus.Logger) domainRepo.SessionStore {
	return &FileStore{
		path:   cfg.FilePath,
		tokens: tokens,
		log:    log,
	}
}

func (s *FileStore) Load(ctx context.Context) (*entity.Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	claims, err := s.tokens.Parse(string(raw))
	if err != nil {
		s.log.Warnf("Stored session rejected: %+v", err)
		return nil, nil
	}

	return &entity.Session{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      entity.Role(claims.Role),
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *FileStore) Save(ctx context.Context, session *entity.Session) error {
	token, issuedAt, expiresAt, err := s.tokens.Issue(session.UserID, session.Email, string(session.Role))
	if err != nil {
		return err
	}
	session.IssuedAt = issuedAt
	session.ExpiresAt = expiresAt

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
