package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pratik-mahalle/gigmarket/internal/api/handlers"
	"github.com/pratik-mahalle/gigmarket/internal/api/router"
	"github.com/pratik-mahalle/gigmarket/internal/config"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
	"github.com/pratik-mahalle/gigmarket/internal/repository/postgres"
	"github.com/pratik-mahalle/gigmarket/internal/services"
	"github.com/pratik-mahalle/gigmarket/internal/storage"
	"github.com/pratik-mahalle/gigmarket/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.Files); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	offerRepo := postgres.NewOfferRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	infoRepo := postgres.NewInfoRepository(db)

	userSvc := services.NewUserService(userRepo, log, cfg.Auth.BCryptCost)
	profileSvc := services.NewProfileService(profileRepo, log)
	offerSvc := services.NewOfferService(offerRepo, log)
	orderSvc := services.NewOrderService(orderRepo, offerRepo, userRepo, log)
	reviewSvc := services.NewReviewService(reviewRepo, userRepo, log)
	infoSvc := services.NewInfoService(infoRepo)

	v := validator.New()
	h := router.Handlers{
		Auth:     handlers.NewAuthHandler(userSvc, v, cfg.Auth),
		Profile:  handlers.NewProfileHandler(profileSvc, store, v),
		Offer:    handlers.NewOfferHandler(offerSvc, v),
		Order:    handlers.NewOrderHandler(orderSvc, v),
		Review:   handlers.NewReviewHandler(reviewSvc, v),
		BaseInfo: handlers.NewBaseInfoHandler(infoSvc),
		Health:   handlers.NewHealthHandler(db),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
	log.Info("server stopped")
}
