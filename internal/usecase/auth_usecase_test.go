package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicconnect/config"
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/infrastructure/dataset"
	"clinicconnect/internal/infrastructure/session"
	"clinicconnect/internal/repository"
	"clinicconnect/pkg/sessiontoken"
	"clinicconnect/pkg/validator"
)

func newAuthFixture(t *testing.T) AuthUsecase {
	t.Helper()
	cfg := config.SessionConfig{
		FilePath: filepath.Join(t.TempDir(), "session"),
		Secret:   "test-secret",
		TTL:      time.Hour,
	}
	data := dataset.Seed(time.Now())
	store := session.NewFileStore(cfg, sessiontoken.NewService(cfg), quietLogger())
	return NewAuthUsecase(quietLogger(), repository.NewUserRepository(data), store, validator.NewValidator(), cfg)
}

func TestLoginSuccess(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	resp, err := auth.Login(ctx, &dto.LoginRequest{
		Email:    "patient@demo.com",
		Password: dataset.DemoPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, dataset.PatientJohnID, resp.ID)
	assert.Equal(t, "patient", resp.Role)

	user, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, dataset.PatientJohnID, user.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, &dto.LoginRequest{Email: "patient@demo.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, &dto.LoginRequest{Email: "nobody@demo.com", Password: dataset.DemoPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, &dto.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
}

func TestRegisterPatient(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	resp, err := auth.Register(ctx, &dto.RegisterRequest{
		Email:     "new.patient@demo.com",
		Password:  "secret123",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Role:      "patient",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Nguyen", resp.FullName)

	// Registration starts a session for the new account.
	user, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, user.ID)
	assert.True(t, user.IsPatient())
	require.NotNil(t, user.PatientProfile)
}

func TestRegisterDoctorStartsUnapproved(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, &dto.RegisterRequest{
		Email:          "new.doctor@demo.com",
		Password:       "secret123",
		FirstName:      "Dana",
		LastName:       "Singh",
		Role:           "doctor",
		Department:     "Cardiology",
		Specialization: "General Cardiology",
		LicenseNumber:  "MD-2026-042",
	})
	require.NoError(t, err)

	user, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user.DoctorProfile)
	assert.False(t, user.DoctorProfile.IsApproved)
	assert.Equal(t, "Cardiology", user.DoctorProfile.Department)
}

func TestRegisterDoctorRequiresCredentialFields(t *testing.T) {
	auth := newAuthFixture(t)

	_, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:     "bare.doctor@demo.com",
		Password:  "secret123",
		FirstName: "Bare",
		LastName:  "Doctor",
		Role:      "doctor",
	})
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	auth := newAuthFixture(t)

	_, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:     "patient@demo.com",
		Password:  "secret123",
		FirstName: "John",
		LastName:  "Again",
		Role:      "patient",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogoutEndsSession(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, &dto.LoginRequest{
		Email:    "doctor@demo.com",
		Password: dataset.DemoPassword,
	})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx))

	_, err = auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// Logout with no session is a no-op.
	assert.NoError(t, auth.Logout(ctx))
}

func TestCurrentUserWithoutSession(t *testing.T) {
	auth := newAuthFixture(t)

	_, err := auth.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentUserRole(t *testing.T) {
	auth := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, &dto.LoginRequest{
		Email:    "admin@demo.com",
		Password: dataset.DemoPassword,
	})
	require.NoError(t, err)

	user, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}
