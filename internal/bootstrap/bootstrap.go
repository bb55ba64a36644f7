// Package bootstrap assembles the application: configuration, logging,
// data files, services, and the HTTP router.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/oguzk/campusreg/internal/app/controllers"
	"github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/app/routes"
	"github.com/oguzk/campusreg/internal/app/services"
	"github.com/oguzk/campusreg/internal/config"
	"github.com/oguzk/campusreg/internal/middleware"
	"github.com/oguzk/campusreg/internal/pkg/auth"
	"github.com/oguzk/campusreg/internal/pkg/helpers"
	"github.com/oguzk/campusreg/internal/pkg/logger"
)

// Dependencies holds everything the server needs to run.
type Dependencies struct {
	Config       *config.Config
	Repositories *repositories.Repositories
	JWTService   *auth.JWTService

	AuthService         services.AuthService
	RegistrationService services.RegistrationService
	AnalyticsService    services.AnalyticsService

	AuthMiddleware *middleware.AuthMiddleware
	Controllers    routes.Controllers
}

// LoadConfigAndSetupLogger loads configuration and configures the global logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})

	log.Info().Str("mode", cfg.Server.Mode).Int("port", cfg.Server.Port).Msg("Configuration loaded")
	return cfg, nil
}

// SetupDataFiles creates the data directory and seeds any missing data files.
func SetupDataFiles(cfg *config.Config, repos *repositories.Repositories) error {
	if err := repos.Initialize(cfg.Data.Dir); err != nil {
		return fmt.Errorf("failed to initialize data files: %w", err)
	}
	log.Info().Str("dataDir", cfg.Data.Dir).Msg("Data files ready")
	return nil
}

// BuildDependencies wires repositories, services, middleware, and controllers.
func BuildDependencies(cfg *config.Config) (*Dependencies, error) {
	appLogger := log.Logger

	repos := repositories.NewRepositories(cfg.Data.Dir, appLogger)
	if err := SetupDataFiles(cfg, repos); err != nil {
		return nil, err
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService := services.NewAuthService(repos.Students, repos.Logs, appLogger)
	registrationService := services.NewRegistrationService(repos.Students, repos.Courses, repos.Logs, appLogger)
	analyticsService := services.NewAnalyticsService(repos.Students, repos.Courses, repos.Logs, appLogger)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	ctrl := routes.Controllers{
		Auth:      controllers.NewAuthController(authService, jwtService, appLogger),
		Student:   controllers.NewStudentController(registrationService, appLogger),
		Course:    controllers.NewCourseController(registrationService, repos.Courses, repos.Logs, appLogger),
		Analytics: controllers.NewAnalyticsController(analyticsService, repos.Logs, appLogger),
		Activity:  controllers.NewActivityController(repos.Logs, appLogger),
	}

	return &Dependencies{
		Config:              cfg,
		Repositories:        repos,
		JWTService:          jwtService,
		AuthService:         authService,
		RegistrationService: registrationService,
		AnalyticsService:    analyticsService,
		AuthMiddleware:      authMiddleware,
		Controllers:         ctrl,
	}, nil
}

// SetupRouter builds the gin engine with all routes registered.
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	routes.SetupRoutes(router, deps.Controllers, deps.AuthMiddleware)
	return router
}
