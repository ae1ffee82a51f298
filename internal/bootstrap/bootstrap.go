package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/initi8now/waitlist/internal/app/controllers"
	appMigrations "github.com/initi8now/waitlist/internal/app/migrations"
	appRepos "github.com/initi8now/waitlist/internal/app/repositories"
	appRoutes "github.com/initi8now/waitlist/internal/app/routes"
	appServices "github.com/initi8now/waitlist/internal/app/services"
	"github.com/initi8now/waitlist/internal/config"
	"github.com/initi8now/waitlist/internal/db"
	appMiddleware "github.com/initi8now/waitlist/internal/middleware"
	pkgAuth "github.com/initi8now/waitlist/internal/pkg/auth"
	"github.com/initi8now/waitlist/internal/pkg/email"
	"github.com/initi8now/waitlist/internal/pkg/logger"
	"github.com/initi8now/waitlist/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	WaitlistService        *appServices.WaitlistService
	NewsletterService      *appServices.NewsletterService
	NotificationService    *appServices.NotificationService
	AuthService            *appServices.AuthService
	AdminService           *appServices.AdminService
	WaitlistController     *appControllers.WaitlistController
	NewsletterController   *appControllers.NewsletterController
	NotificationController *appControllers.NotificationController
	AuthController         *appControllers.AuthController
	AdminController        *appControllers.AdminController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	EmailService           *email.Service
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		// A missing admin account is recoverable; the public routes still work
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenExp(),
		RefreshTokenExp: cfg.RefreshTokenExp(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, "")
	deps.EmailService = email.NewService(email.Config{
		APIKey:        cfg.Email.ResendAPIKey,
		FromAddress:   cfg.Email.FromAddress,
		AlertFrom:     cfg.Email.AlertFrom,
		OperatorEmail: cfg.Email.OperatorEmail,
	}, resendClient, lgr)

	deps.NotificationService = appServices.NewNotificationService(deps.EmailService, lgr)
	deps.WaitlistService = appServices.NewWaitlistService(
		deps.Repos.StudentRepository,
		deps.Repos.RecruiterRepository,
		deps.NotificationService,
		lgr,
	)
	deps.NewsletterService = appServices.NewNewsletterService(deps.Repos.NewsletterRepository, lgr)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.StudentRepository,
		deps.Repos.RecruiterRepository,
		deps.Repos.NewsletterRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.RoleRepository)

	deps.WaitlistController = appControllers.NewWaitlistController(deps.WaitlistService, lgr)
	deps.NewsletterController = appControllers.NewNewsletterController(deps.NewsletterService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.WaitlistController,
		deps.NewsletterController,
		deps.NotificationController,
		deps.AuthController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
