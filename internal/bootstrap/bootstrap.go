package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/doruk/portfolio/internal/app/controllers"
	appMigrations "github.com/doruk/portfolio/internal/app/migrations"
	appRepos "github.com/doruk/portfolio/internal/app/repositories"
	appRoutes "github.com/doruk/portfolio/internal/app/routes"
	appServices "github.com/doruk/portfolio/internal/app/services"
	"github.com/doruk/portfolio/internal/config"
	"github.com/doruk/portfolio/internal/db"
	appMiddleware "github.com/doruk/portfolio/internal/middleware"
	"github.com/doruk/portfolio/internal/pkg/filestorage"
	"github.com/doruk/portfolio/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ProjectService       appServices.ProjectService
	SkillService         appServices.SkillService
	CertificationService appServices.CertificationService
	ExperienceService    appServices.ExperienceService
	EducationService     appServices.EducationService
	MessageService       appServices.MessageService

	PublicController        *appControllers.PublicController
	AdminController         *appControllers.AdminController
	ProjectController       *appControllers.ProjectController
	SkillController         *appControllers.SkillController
	CertificationController *appControllers.CertificationController
	ExperienceController    *appControllers.ExperienceController
	EducationController     *appControllers.EducationController
	MessageController       *appControllers.MessageController

	Repos       *appRepos.Repositories
	FileStorage *filestorage.LocalStorage
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

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

// SetupDatabase opens the database and applies the migrations for the
// selected dialect
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().Str("driver", cfg.DatabaseDriver()).Msg("Establishing database connection...")
	database, err := db.New(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	migrationsDir := filepath.Join("migrations", dialectDir(cfg))
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.DB)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready")
	return database, nil
}

func dialectDir(cfg *config.Config) string {
	if cfg.DatabaseDriver() == config.DriverPostgres {
		return "postgres"
	}
	return "sqlite"
}

// BuildDependencies wires repositories, storage, services and controllers
func BuildDependencies(cfg *config.Config, database *db.Database, lgr zerolog.Logger) (*Dependencies, error) {
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	repos := appRepos.NewRepositories(database.DB)

	projectService := appServices.NewProjectService(repos.ProjectRepository, storage)
	skillService := appServices.NewSkillService(repos.SkillRepository)
	certificationService := appServices.NewCertificationService(repos.CertificationRepository)
	experienceService := appServices.NewExperienceService(repos.ExperienceRepository)
	educationService := appServices.NewEducationService(repos.EducationRepository, storage)
	messageService := appServices.NewMessageService(repos.MessageRepository)

	deps := &Dependencies{
		ProjectService:       projectService,
		SkillService:         skillService,
		CertificationService: certificationService,
		ExperienceService:    experienceService,
		EducationService:     educationService,
		MessageService:       messageService,

		PublicController: appControllers.NewPublicController(
			projectService, skillService, certificationService, experienceService, educationService),
		AdminController:         appControllers.NewAdminController(),
		ProjectController:       appControllers.NewProjectController(projectService),
		SkillController:         appControllers.NewSkillController(skillService),
		CertificationController: appControllers.NewCertificationController(certificationService),
		ExperienceController:    appControllers.NewExperienceController(experienceService),
		EducationController:     appControllers.NewEducationController(educationService),
		MessageController:       appControllers.NewMessageController(messageService),

		Repos:       repos,
		FileStorage: storage,
		Logger:      lgr,
	}

	return deps, nil
}

// SetupRouter builds the gin engine with middleware, templates and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	router.LoadHTMLGlob("templates/*")

	appRoutes.SetupRouter(
		router,
		deps.PublicController,
		deps.AdminController,
		deps.ProjectController,
		deps.SkillController,
		deps.CertificationController,
		deps.ExperienceController,
		deps.EducationController,
		deps.MessageController,
	)

	return router
}
