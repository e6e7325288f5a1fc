package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare/internal/core/auth"
	"petcare/internal/core/config"
	"petcare/internal/core/database"
	"petcare/internal/core/logger"
	"petcare/internal/core/server"
	"petcare/internal/repo"
	"petcare/internal/seed"
	"petcare/internal/service"
	"petcare/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		File:  cfg.Log.File,
	})
	defer cleanup()

	db := mustOpenDB(cfg, log)
	if cfg.DB.URL == "" {
		log.Info("uso sqlite locale")
	} else {
		log.Info("connessione al database remoto")
	}

	initializer := seed.New(db, log)
	// Warm the store at boot; a failure is retried lazily per request.
	if err := initializer.EnsureReady(context.Background()); err != nil {
		log.Warn("store init at boot failed, will retry on first request", zap.Error(err))
	}

	sessions := &auth.Sessions{
		Secret: []byte(cfg.SecretKey),
		TTL:    12 * time.Hour,
	}

	userRepo := repo.NewUserRepo(db)
	bookingRepo := repo.NewBookingRepo(db)

	r := router.NewEngine(router.Deps{
		Log:       log,
		DB:        db,
		Init:      initializer,
		Sessions:  sessions,
		Directory: service.NewDirectory(userRepo, log),
		Accounts:  service.NewAccounts(userRepo, log),
		Bookings:  service.NewBookings(bookingRepo, log),
		Admin:     service.NewAdmin(cfg.Admin.Username, cfg.Admin.Password, userRepo, bookingRepo, log),
		Debug:     cfg.App.Debug,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.Build(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("petcare starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.Bool("debug", cfg.App.Debug),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("petcare start FAILED", zap.Error(err))
		}
	}()
	log.Info("petcare started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("petcare stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.Open(database.Opts{
		URL:                cfg.DB.URL,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
