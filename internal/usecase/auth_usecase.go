package usecase

import (
	"context"
	"errors"
	"time"

	"clinicconnect/config"
	"clinicconnect/internal/converter"
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/domain/repository"
	"clinicconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("no active session")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entity.User, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	sessionStore repository.SessionStore
	validator    *validator.CustomValidator
	sessionTTL   time.Duration
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionStore repository.SessionStore,
	customValidator *validator.CustomValidator,
	cfg config.SessionConfig,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		validator:    customValidator,
		sessionTTL:   cfg.TTL,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.saveSession(ctx, user); err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New(),
		Role:         entity.Role(req.Role),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}

	switch user.Role {
	case entity.RoleDoctor:
		// New doctors wait for admin approval before appearing in the directory.
		user.DoctorProfile = &entity.DoctorProfile{
			UserID:          user.ID,
			Specializations: []string{req.Specialization},
			Department:      req.Department,
			LicenseNumber:   req.LicenseNumber,
		}
	case entity.RolePatient:
		user.PatientProfile = &entity.PatientProfile{UserID: user.ID}
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.saveSession(ctx, user); err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	if err := u.sessionStore.Clear(ctx); err != nil {
		u.log.Warnf("Failed to clear session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) CurrentUser(ctx context.Context) (*entity.User, error) {
	session, err := u.sessionStore.Load(ctx)
	if err != nil {
		u.log.Warnf("Failed to load session: %+v", err)
		return nil, err
	}
	if session == nil || session.Expired(time.Now()) {
		return nil, ErrNoSession
	}

	user, err := u.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		u.log.Warnf("Failed to find session user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) saveSession(ctx context.Context, user *entity.User) error {
	now := time.Now()
	session := &entity.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessionStore.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return err
	}
	return nil
}
