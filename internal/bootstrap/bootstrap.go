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

	appControllers "github.com/edukta/backend/internal/app/controllers"
	appMigrations "github.com/edukta/backend/internal/app/migrations"
	appRepos "github.com/edukta/backend/internal/app/repositories"
	appRoutes "github.com/edukta/backend/internal/app/routes"
	appServices "github.com/edukta/backend/internal/app/services"
	"github.com/edukta/backend/internal/config"
	"github.com/edukta/backend/internal/db"
	appMiddleware "github.com/edukta/backend/internal/middleware"
	pkgAuth "github.com/edukta/backend/internal/pkg/auth"
	"github.com/edukta/backend/internal/pkg/email"
	"github.com/edukta/backend/internal/pkg/filestorage"
	"github.com/edukta/backend/internal/pkg/helpers"
	"github.com/edukta/backend/internal/pkg/logger"
	"github.com/edukta/backend/internal/pkg/oauth"
	"github.com/edukta/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	AuthController        *appControllers.AuthController
	CourseController      *appControllers.CourseController
	UserController        *appControllers.UserController
	AdminController       *appControllers.AdminController
	CertificateController *appControllers.CertificateController
	DocumentController    *appControllers.DocumentController
	EmailController       *appControllers.EmailController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and
// controllers around the shared pool.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Expired refresh tokens accumulate between restarts, sweep them now.
	if deleted, err := deps.Repos.TokenRepository.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to delete expired refresh tokens")
	} else if deleted > 0 {
		lgr.Info().Int64("deleted", deleted).Msg("Expired refresh tokens removed")
	}

	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	encrypter := pkgAuth.NewEncrypter(cfg.Auth.Pepper)

	emailService := email.NewService(email.SMTPConfig{
		Host:      cfg.Email.Host,
		Port:      cfg.Email.Port,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.From,
		UseTLS:    cfg.Email.UseTLS,
	}, lgr)

	googleAuth := oauth.NewGoogleAuthenticator(oauth.GoogleConfig{
		ClientID:      cfg.Google.ClientID,
		ClientSecret:  cfg.Google.ClientSecret,
		CallbackURL:   cfg.Google.CallbackURL,
		SessionSecret: cfg.Auth.SessionSecret,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, encrypter, emailService, storage)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, googleAuth, cfg.Server.FrontendURL)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.AdminController = appControllers.NewAdminController(deps.Services.AdminService, deps.Services.AuthService)
	deps.CertificateController = appControllers.NewCertificateController(deps.Services.CertificateService)
	deps.DocumentController = appControllers.NewDocumentController(deps.Services.DocumentService)
	deps.EmailController = appControllers.NewEmailController(emailService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter builds the Gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(lgr))
	router.MaxMultipartMemory = 32 << 20

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.CourseController,
		deps.UserController,
		deps.AdminController,
		deps.CertificateController,
		deps.DocumentController,
		deps.EmailController,
		deps.AuthMiddleware,
	)

	return router
}

// requestLogger logs each request with zerolog.
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		lgr.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}
