package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/config"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/gateway/paystack"
	httpHandler "github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/http/handler"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/oauth/google"
	pgStorage "github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/storage/postgres"
	redisStorage "github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/storage/redis"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/metrics"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/service"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env into the process environment before viper reads it.
	// Missing file is fine — production sets real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wallet Service")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("WS_JWT_SECRET is required")
	}
	if cfg.Paystack.SecretKey == "" {
		log.Fatal().Msg("WS_PAYSTACK_SECRET_KEY is required")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	keyRepo := pgStorage.NewAPIKeyRepo(pool)
	webhookRepo := pgStorage.NewWebhookLogRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	stateStore := redisStorage.NewOAuthStateStore(rdb)
	settledCache := redisStorage.NewSettledCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize metrics registry
	m := metrics.New()

	// Initialize outbound clients
	gateway := paystack.NewClient(cfg.Paystack, &http.Client{Timeout: cfg.Paystack.Timeout}, log)
	oauthClient := google.NewClient(cfg.Google, &http.Client{Timeout: 10 * time.Second}, log)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	sigSvc := service.NewPaystackSignatureService(cfg.Paystack.SecretKey)

	// Initialize business services
	authSvc := service.NewAuthService(userRepo, walletRepo, oauthClient, stateStore, tokenSvc, transactor, cfg.Wallet.Currency, log)
	depositSvc := service.NewDepositService(txRepo, walletRepo, gateway, transactor, settledCache, cfg.Wallet.MinDeposit, cfg.Paystack.Timeout, m, log)
	transferSvc := service.NewTransferService(txRepo, walletRepo, transactor, m, log)
	walletSvc := service.NewWalletService(walletRepo, txRepo, log)
	ingestSvc := service.NewWebhookIngestService(webhookRepo, depositSvc, m, log)
	keySvc := service.NewAPIKeyService(keyRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		DepositSvc:     depositSvc,
		TransferSvc:    transferSvc,
		WalletSvc:      walletSvc,
		IngestSvc:      ingestSvc,
		KeySvc:         keySvc,
		SignatureSvc:   sigSvc,
		TokenSvc:       tokenSvc,
		UserRepo:       userRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Metrics:        m,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
