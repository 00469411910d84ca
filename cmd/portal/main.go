package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campus-portal/internal/audit"
	"github.com/noah-isme/campus-portal/internal/bootstrap"
	"github.com/noah-isme/campus-portal/internal/cli"
	"github.com/noah-isme/campus-portal/internal/repository"
	"github.com/noah-isme/campus-portal/internal/service"
	"github.com/noah-isme/campus-portal/pkg/config"
	"github.com/noah-isme/campus-portal/pkg/database"
	"github.com/noah-isme/campus-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	auditDB, err := database.NewSQLite(cfg.Audit.DBPath)
	if err != nil {
		logr.Sugar().Fatalw("failed to open audit store", "error", err)
	}
	defer auditDB.Close()

	ctx := context.Background()

	users := repository.NewUserRepository()
	courses := repository.NewCourseRepository()
	records := repository.NewRecordRepository()
	salaries := repository.NewSalaryRepository()
	auditRepo := repository.NewAuditRepository(auditDB)

	if err := bootstrap.Load(ctx, bootstrap.Default(), users, courses, cfg.Portal.BcryptCost); err != nil {
		logr.Sugar().Fatalw("failed to load bootstrap snapshot", "error", err)
	}

	validate := validator.New()
	recorder := audit.NewRecorder(auditRepo, logr)

	session := cli.NewSession(cli.Deps{
		Prompt:      cli.NewPrompt(os.Stdin, os.Stdout),
		Out:         os.Stdout,
		Auth:        service.NewAuthService(users, validate, logr, recorder, service.AuthConfig{BcryptCost: cfg.Portal.BcryptCost}),
		Enrollments: service.NewEnrollmentService(courses, records, cfg.Portal.MaxEnrollment, logr, recorder),
		Grades:      service.NewGradeService(records, nil, logr, recorder),
		Records:     service.NewRecordService(records, courses, cfg.Reports.StorageDir, logr),
		Users:       service.NewUserService(users, courses, validate, logr, recorder, cfg.Portal.BcryptCost, cfg.Reports.StorageDir),
		Teachers:    service.NewTeacherService(salaries, users, validate, logr, recorder),
		Trail:       auditRepo,
		Audit:       recorder,
		Logger:      logr,
	})

	logr.Sugar().Infow("portal starting", "env", cfg.Env)
	if err := session.Run(ctx); err != nil {
		logr.Sugar().Fatalw("session failed", "error", err)
	}
}
