package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"jobboard-service/internal/application/interfaces"
	"jobboard-service/internal/application/services"
	"jobboard-service/internal/config"
	"jobboard-service/internal/delivery/handler"
	"jobboard-service/internal/infrastructure"
	"jobboard-service/internal/infrastructure/db/sqlstore"
	"jobboard-service/internal/messaging"
)

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func main() {
	storeSecret := flag.Bool("store-jwt-secret", false, "save JWT_SECRET to the OS keyring under JWT_KEYRING_ACCOUNT and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	log := newLogger(cfg)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if *storeSecret {
		if cfg.JWTKeyringAccount == "" || cfg.JWTSecret == "" {
			log.Fatal("JWT_KEYRING_ACCOUNT and JWT_SECRET are required to store the signing secret")
		}
		if err := infrastructure.StoreSigningSecret(cfg.JWTKeyringAccount, cfg.JWTSecret); err != nil {
			log.WithError(err).Fatal("failed to store signing secret")
		}
		log.WithField("account", cfg.JWTKeyringAccount).Info("signing secret stored in keyring")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlstore.Open(cfg.DBDriver, cfg.DatabaseURI, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer func() {
		if err := sqlstore.Close(db); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()
	store := sqlstore.NewStore(db)

	resumes, err := infrastructure.NewResumeStore(cfg.UploadFolder)
	if err != nil {
		log.WithError(err).Fatal("failed to prepare upload folder")
	}

	tokens := infrastructure.NewJWTService(
		infrastructure.ResolveSigningSecret(cfg.JWTKeyringAccount, cfg.JWTSecret, log),
		cfg.TokenTTL,
	)

	profiles := infrastructure.NewRedisService(ctx, cfg.Redis, log)
	defer func() {
		if err := profiles.Close(); err != nil {
			log.WithError(err).Warn("failed to close redis")
		}
	}()

	var events interfaces.EventPublisher = messaging.NopPublisher{}
	if cfg.NatsURL != "" {
		nats, err := messaging.ConnectNats(cfg.NatsURL, log)
		if err != nil {
			log.WithError(err).Warn("nats unavailable, events disabled")
		} else {
			defer nats.Close()
			events = nats
		}
	}

	loginLimiter := infrastructure.NewRateLimiter(ctx, cfg.LoginRatePerMinute, cfg.LoginRateBurst)

	svc := handler.Services{
		Users:        services.NewUserService(store, tokens, profiles, loginLimiter, cfg.ProfileCacheTTL, log),
		Jobs:         services.NewJobService(store, resumes, events, cfg.Catalog, log),
		Applications: services.NewApplicationService(store, resumes, events, cfg.Catalog, cfg.APIPrefix+"/uploads/resumes", log),
		Dashboard:    services.NewDashboardService(store, log),
	}
	e := handler.NewRouter(svc, handler.RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, log)

	go func() {
		log.WithFields(logrus.Fields{
			"addr":   cfg.HTTPAddr,
			"prefix": cfg.APIPrefix,
			"db":     cfg.DBDriver,
		}).Info("server starting")
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
