package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/compagnon-careme/backend/internal/api/http"
	"github.com/compagnon-careme/backend/internal/cache"
	"github.com/compagnon-careme/backend/internal/campaign"
	"github.com/compagnon-careme/backend/internal/config"
	"github.com/compagnon-careme/backend/internal/db"
	"github.com/compagnon-careme/backend/internal/repository"
	"github.com/compagnon-careme/backend/internal/server"
	"github.com/compagnon-careme/backend/internal/service"
	"github.com/compagnon-careme/backend/pkg/auth"
	"github.com/compagnon-careme/backend/pkg/email"
	"github.com/compagnon-careme/backend/pkg/email/smtp"
	"github.com/compagnon-careme/backend/pkg/hash"
	"github.com/compagnon-careme/backend/pkg/logger"
	"github.com/compagnon-careme/backend/pkg/otp"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Infow("starting backend api", "env", cfg.Env)
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Errorw("mysql connect problem", "error", err)
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Errorw("error when closing", "error", err)
		}
	}()
	appLogger.Info("mysql connection done")

	if err := db.Migrate(context.Background(), dbMySQL); err != nil {
		appLogger.Errorw("db migration failed", "error", err)
		os.Exit(1)
	}
	appLogger.Info("db migrations applied")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Errorw("redis connect problem, catalog cache disabled", "error", err)
		redisClient = nil
	}

	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Errorw("smtp sender creation failed", "error", err)
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT.SigningKey, cfg.Auth.JWT.AccessTokenTTL)
	if err != nil {
		appLogger.Errorw("auth manager creation err", "error", err)
		return
	}

	otpGenerator := otp.NewGOTPGenerator()

	campaignStart, err := cfg.CampaignStart()
	if err != nil {
		appLogger.Errorw("campaign start date parsing failed", "error", err)
		return
	}
	calendar := campaign.NewCalendar(campaignStart, cfg.Campaign.Days)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:         cfg,
		Hasher:         hasher,
		TokenManager:   tokenManager,
		OtpGenerator:   otpGenerator,
		EmailSender:    emailSender,
		DomainVerifier: email.NewMXVerifier(cfg.Email.MXLookupTimeout),
		Calendar:       calendar,
		Cache:          redisClient,
		Repos:          repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorw("error occurred while running http server", "error", err)
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Errorw("failed to stop server", "error", err)
	}

	appLogger.Info("app stopped")
}
