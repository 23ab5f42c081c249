package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/imports"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
	"resume-builder-backend/internal/shared/storage/db"
	"resume-builder-backend/internal/summaries"
	"resume-builder-backend/summary/engine"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Engine           *engine.Engine
	ResumesRepo      resumes.ResumesRepo
	ResumesService   *resumes.Service
	ResumesHandler   *resumes.Handler
	SummariesHandler *summaries.Handler
	ImportsHandler   *imports.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ResumeStoreType) == "" {
		cfg.ResumeStoreType = "file"
	}
	ctx := context.Background()

	app := &App{
		Config: cfg,
		Engine: engine.New(),
	}

	repo, sqlDB, err := buildRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB
	app.ResumesRepo = repo

	app.ResumesService = resumes.NewService(repo, cfg.PublicBaseURL)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.SummariesHandler = summaries.NewHandler(app.Engine)
	app.ImportsHandler = imports.NewHandler()

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		ResumesHandler:   app.ResumesHandler,
		SummariesHandler: app.SummariesHandler,
		ImportsHandler:   app.ImportsHandler,
	})

	return app, nil
}

func buildRepo(ctx context.Context, cfg config.Config) (resumes.ResumesRepo, *sql.DB, error) {
	switch cfg.ResumeStoreType {
	case "postgres":
		sqlDB, err := connectDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if sqlDB == nil {
			return resumes.NewMemoryRepo(), nil, nil
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		return &resumes.PGRepo{DB: sqlDB}, sqlDB, nil
	case "s3":
		repo, err := resumes.NewS3Repo(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	case "memory":
		return resumes.NewMemoryRepo(), nil, nil
	default:
		return resumes.NewFileRepo(cfg.ResumeDir), nil, nil
	}
}

func connectDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required when RESUME_STORE=postgres")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
