package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/networknexus/nexushub/internal/app/controllers"
	appMigrations "github.com/networknexus/nexushub/internal/app/migrations"
	"github.com/networknexus/nexushub/internal/app/models/dto"
	appRepos "github.com/networknexus/nexushub/internal/app/repositories"
	appRoutes "github.com/networknexus/nexushub/internal/app/routes"
	appServices "github.com/networknexus/nexushub/internal/app/services"
	"github.com/networknexus/nexushub/internal/config"
	"github.com/networknexus/nexushub/internal/db"
	appMiddleware "github.com/networknexus/nexushub/internal/middleware"
	pkgAuth "github.com/networknexus/nexushub/internal/pkg/auth"
	"github.com/networknexus/nexushub/internal/pkg/logger"
	"github.com/networknexus/nexushub/internal/pkg/metrics"
	"github.com/networknexus/nexushub/internal/pkg/websocket"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Metrics    *metrics.Metrics
	Hub        *websocket.Hub

	AlumniService      appServices.AlumniService
	HallOfFameService  appServices.HallOfFameService
	MentorshipService  appServices.MentorshipService
	ApplicationService appServices.ApplicationService
	InternshipService  appServices.InternshipService
	AdminService       appServices.AdminService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	WSHandler      *websocket.Handler
	Database       *db.PostgresDB
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection pool
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	return database, nil
}

// RunMigrations applies every pending file in the configured migrations directory
func RunMigrations(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
// The returned hub is not running yet; the caller owns its lifetime.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Database: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Metrics = metrics.New()
	deps.Hub = websocket.NewHub(logger.Component("websocket"))

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.JWT.AccessTokenExpiration,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AlumniService = appServices.NewAlumniService(deps.Repos.AlumniRepository)
	deps.HallOfFameService = appServices.NewHallOfFameService(deps.Repos.AlumniRepository, logger.Component("hall_of_fame"))
	deps.MentorshipService = appServices.NewMentorshipService(deps.Repos.MentorshipRepository)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Hub,
		deps.Metrics,
		logger.Component("applications"),
	)
	deps.InternshipService = appServices.NewInternshipService(deps.Repos.InternshipRepository, deps.Metrics)
	deps.AdminService = appServices.NewAdminService(
		appServices.AdminCredentials{
			Username:     cfg.Admin.Username,
			PasswordHash: cfg.Admin.PasswordHash,
		},
		deps.JWTService,
		logger.Component("admin"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.WSHandler = websocket.NewHandler(deps.Hub, cfg.Server.AllowedOrigins, logger.Component("websocket"))

	deps.Controllers = appRoutes.Controllers{
		Alumni:      appControllers.NewAlumniController(deps.AlumniService, deps.HallOfFameService),
		Mentorship:  appControllers.NewMentorshipController(deps.MentorshipService),
		Application: appControllers.NewApplicationController(deps.ApplicationService, deps.MentorshipService),
		Internship:  appControllers.NewInternshipController(deps.InternshipService),
		Admin:       appControllers.NewAdminController(deps.AdminService, lgr),
	}

	if cfg.Admin.PasswordHash == "" {
		lgr.Warn().Msg("ADMIN_PASSWORD_HASH is empty, admin login is disabled")
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.Recovery(lgr, !cfg.IsProduction()),
		deps.Metrics.Middleware(),
	)
	router.NoRoute(appMiddleware.NotFoundHandler)

	appRoutes.SetupSwagger(router)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	router.GET("/health", healthHandler(deps.Database))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.WSHandler)

	return router, nil
}

// healthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func healthHandler(database *db.PostgresDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: "down"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
	}
}
