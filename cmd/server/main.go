package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"edumodules/internal/auth"
	"edumodules/internal/cache"
	"edumodules/internal/config"
	"edumodules/internal/db"
	"edumodules/internal/handler"
	"edumodules/internal/mailer"
	"edumodules/internal/model"
	"edumodules/internal/notifier"
	"edumodules/internal/repository"
	"edumodules/internal/router"
	"edumodules/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Module{},
		&model.Lesson{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	moduleRepo := repository.NewModuleRepository(gormDB)
	lessonRepo := repository.NewLessonRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	moduleService := service.NewModuleService(moduleRepo, cacheClient)
	lessonService := service.NewLessonService(lessonRepo, moduleRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	moduleHandler := handler.NewModuleHandler(moduleService)
	lessonHandler := handler.NewLessonHandler(lessonService)

	router.Register(
		e,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		moduleHandler,
		lessonHandler,
	)

	// Inactivity notice scan, runs as a trusted internal process.
	smtpMailer := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender, cfg.SMTPPassword)
	noticeJob := notifier.New(userRepo, smtpMailer)
	cronJob, err := noticeJob.Schedule(cfg.NoticeCron)
	if err != nil {
		log.Fatalf("notifier schedule: %v", err)
	}
	defer cronJob.Stop()
	log.Printf("inactivity notifier scheduled: %q", cfg.NoticeCron)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
