package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/enrolldesk/enrolldesk/internal/app/controllers"
	appMigrations "github.com/enrolldesk/enrolldesk/internal/app/migrations"
	appRepos "github.com/enrolldesk/enrolldesk/internal/app/repositories"
	appRoutes "github.com/enrolldesk/enrolldesk/internal/app/routes"
	appServices "github.com/enrolldesk/enrolldesk/internal/app/services"
	"github.com/enrolldesk/enrolldesk/internal/config"
	"github.com/enrolldesk/enrolldesk/internal/db"
	appMiddleware "github.com/enrolldesk/enrolldesk/internal/middleware"
	pkgAuth "github.com/enrolldesk/enrolldesk/internal/pkg/auth"
	"github.com/enrolldesk/enrolldesk/internal/pkg/helpers"
	"github.com/enrolldesk/enrolldesk/internal/pkg/logger"
	"github.com/enrolldesk/enrolldesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	AuthService       appServices.AuthService
	StudentController *appControllers.StudentController
	AuthController    *appControllers.AuthController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	if cfg.JWT.Secret == "" {
		return nil, zerolog.Logger{}, fmt.Errorf("JWT secret is required (set JWT_SECRET)")
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		// Startup proceeds; the admin account can be created manually
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	studentRepo := appRepos.NewStudentRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.StudentService = appServices.NewStudentService(studentRepo)
	deps.AuthService = appServices.NewAuthService(userRepo, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
