package session

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicconnect/config"
	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/pkg/sessiontoken"
)

func newStore(t *testing.T, ttl time.Duration) (domainRepo.SessionStore, string) {
	t.Helper()
	cfg := config.SessionConfig{
		FilePath: filepath.Join(t.TempDir(), "nested", "session"),
		Secret:   "unit-test-secret",
		TTL:      ttl,
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewFileStore(cfg, sessiontoken.NewService(cfg), log), cfg.FilePath
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, path := newStore(t, time.Hour)
	ctx := context.Background()

	userID := uuid.New()
	saved := &entity.Session{
		UserID: userID,
		Email:  "patient@demo.com",
		Role:   entity.RolePatient,
	}
	require.NoError(t, store.Save(ctx, saved))
	assert.False(t, saved.ExpiresAt.IsZero(), "Save stamps the expiry")

	// The file holds a token, not the raw session.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "patient@demo.com")

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, userID, loaded.UserID)
	assert.Equal(t, "patient@demo.com", loaded.Email)
	assert.Equal(t, entity.RolePatient, loaded.Role)
	assert.False(t, loaded.Expired(time.Now()))
}

func TestFileStoreLoadWithoutFile(t *testing.T) {
	store, _ := newStore(t, time.Hour)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreRejectsTamperedFile(t *testing.T) {
	store, path := newStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Session{UserID: uuid.New(), Email: "a@b.c", Role: entity.RolePatient}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	// A tampered token loads as "no session", never as an error.
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreRejectsGarbageFile(t *testing.T) {
	store, path := newStore(t, time.Hour)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("not a token"), 0o600))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreRejectsExpiredToken(t *testing.T) {
	store, _ := newStore(t, -time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Session{UserID: uuid.New(), Email: "a@b.c", Role: entity.RolePatient}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreClear(t *testing.T) {
	store, path := newStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Session{UserID: uuid.New(), Email: "a@b.c", Role: entity.RolePatient}))
	require.NoError(t, store.Clear(ctx))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clear store succeeds.
	assert.NoError(t, store.Clear(ctx))
}
