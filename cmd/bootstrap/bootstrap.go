package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"clinicconnect/config"
	"clinicconnect/internal/delivery/console"
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/infrastructure/dataset"
	"clinicconnect/internal/infrastructure/session"
	"clinicconnect/internal/repository"
	"clinicconnect/internal/usecase"
	"clinicconnect/pkg/sessiontoken"
	"clinicconnect/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config    *config.Config
	Auth      usecase.AuthUsecase
	Directory usecase.DoctorDirectoryUsecase
	Booking   usecase.BookingUsecase
	Dashboard usecase.DashboardUsecase
	Renderer  *console.Renderer
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logrus.Info("Configuration loaded successfully")

	// Seed the in-memory dataset
	data := dataset.Seed(time.Now())
	logrus.Infof("Dataset seeded with %d users and %d departments", len(data.Users), len(data.Departments))

	app := initializeApp(cfg, data)
	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeApp wires every layer over the shared dataset
func initializeApp(cfg *config.Config, data *dataset.Dataset) *App {
	// Initialize session token service
	tokenService := sessiontoken.NewService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository(data)
	doctorRepo := repository.NewDoctorRepository(data)
	appointmentRepo := repository.NewAppointmentRepository(data)
	prescriptionRepo := repository.NewPrescriptionRepository(data)
	departmentRepo := repository.NewDepartmentRepository(data)
	reviewRepo := repository.NewReviewRepository(data)
	notificationRepo := repository.NewNotificationRepository(data)

	// Initialize session store and booking sink
	sessionStore := session.NewFileStore(cfg.Session, tokenService, log)
	bookingSink := repository.NewBookingSink(log, appointmentRepo, notificationRepo, cfg.Booking.SinkDelay)

	// Initialize usecases
	planner := usecase.NewAvailabilityPlanner()
	authUsecase := usecase.NewAuthUsecase(log, userRepo, sessionStore, customValidator, cfg.Session)
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, doctorRepo, departmentRepo)
	bookingUsecase := usecase.NewBookingUsecase(log, doctorRepo, bookingSink, planner, customValidator, cfg.Booking)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, userRepo, notificationRepo)
	adminUsecase := usecase.NewAdminUsecase(log, doctorRepo, appointmentRepo, departmentRepo, userRepo, notificationRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, userRepo, prescriptionRepo, reviewRepo, notificationRepo, appointmentUsecase, adminUsecase)

	return &App{
		Config:    cfg,
		Auth:      authUsecase,
		Directory: directoryUsecase,
		Booking:   bookingUsecase,
		Dashboard: dashboardUsecase,
		Renderer:  console.NewRenderer(),
	}
}

// Run resolves the current user and prints their dashboard
func (app *App) Run() error {
	ctx := context.Background()

	user, err := app.currentOrDemoUser(ctx)
	if err != nil {
		return err
	}

	dashboard, err := app.Dashboard.BuildFor(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	fmt.Print(app.Renderer.Render(dashboard))
	return nil
}

// currentOrDemoUser restores the saved session, falling back to a demo
// login when no valid session exists.
func (app *App) currentOrDemoUser(ctx context.Context) (*entity.User, error) {
	user, err := app.Auth.CurrentUser(ctx)
	if err == nil {
		logrus.Infof("Restored session for %s", user.Email)
		return user, nil
	}
	if err != usecase.ErrNoSession {
		return nil, err
	}

	logrus.Info("No active session, logging in with the demo account")
	if _, err := app.Auth.Login(ctx, &dto.LoginRequest{
		Email:    app.Config.Demo.Email,
		Password: app.Config.Demo.Password,
	}); err != nil {
		return nil, fmt.Errorf("demo login failed: %w", err)
	}
	return app.Auth.CurrentUser(ctx)
}
