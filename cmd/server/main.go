package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/category_service/internal/config"
	"github.com/Skotchmaster/category_service/internal/httpserver"
	appmw "github.com/Skotchmaster/category_service/internal/middleware"
	"github.com/Skotchmaster/category_service/internal/models"
	"github.com/Skotchmaster/category_service/internal/repo"
	"github.com/Skotchmaster/category_service/internal/service"
	"github.com/Skotchmaster/category_service/internal/validation"
	pkgdb "github.com/Skotchmaster/category_service/pkg/db"
	"github.com/Skotchmaster/category_service/pkg/logging"
	loggingmw "github.com/Skotchmaster/category_service/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Category{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	gormRepo := &repo.GormRepo{DB: db}
	authSvc := &service.AuthService{
		Repo:      gormRepo,
		Method:    cfg.SigningMethod(),
		JWTSecret: cfg.JWTSecret,
	}
	categorySvc := &service.CategoryService{Repo: gormRepo}

	e := echo.New()
	e.Validator = validation.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Svc: authSvc, SignupPin: cfg.SignupPin},
		CategoryHandler: &httpserver.CategoryHTTP{Svc: categorySvc},
		Auth:            appmw.NewBearerAuth(authSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("server stopped")
}
