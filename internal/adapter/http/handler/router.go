package handler

import (
	"net/http"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/http/middleware"
	redisStore "github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/storage/redis"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	DepositSvc     ports.DepositService
	TransferSvc    ports.TransferService
	WalletSvc      ports.WalletService
	IngestSvc      ports.WebhookIngestService
	KeySvc         ports.APIKeyService
	SignatureSvc   ports.WebhookSignatureService
	TokenSvc       ports.TokenService
	UserRepo       ports.UserRepository
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Metrics // nil = metrics collection disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Service banner
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "wallet-service",
			"status":  "running",
		})
	})

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := r.Group("/auth")
	{
		auth.GET("/google", rl("auth"), authHandler.GoogleLogin)
		auth.GET("/google/callback", rl("auth"), authHandler.GoogleCallback)
	}

	walletHandler := NewWalletHandler(deps.DepositSvc, deps.TransferSvc, deps.WalletSvc, deps.IngestSvc, deps.SignatureSvc)

	// Provider webhook: public, gated by the body signature alone. Not rate
	// limited so redeliveries are never dropped.
	r.POST("/wallet/paystack/webhook", walletHandler.PaystackWebhook)

	// --- Authenticated routes (JWT or API key) ---
	authed := middleware.Authenticate(deps.TokenSvc, deps.KeySvc, deps.UserRepo, deps.Logger)

	keysHandler := NewKeysHandler(deps.KeySvc)
	keys := r.Group("/keys", authed)
	{
		keys.POST("/create", rl("keys"), keysHandler.CreateKey)
		keys.POST("/rollover", rl("keys"), keysHandler.RolloverKey)
	}

	wallet := r.Group("/wallet", authed)
	{
		wallet.POST("/deposit", rl("deposit"), middleware.RequirePermission(domain.PermissionDeposit), walletHandler.InitiateDeposit)
		wallet.POST("/transfer", rl("transfer"), middleware.RequirePermission(domain.PermissionTransfer), walletHandler.Transfer)
		wallet.GET("/balance", rl("wallet_read"), middleware.RequirePermission(domain.PermissionRead), walletHandler.GetBalance)
		wallet.GET("/transactions", rl("wallet_read"), middleware.RequirePermission(domain.PermissionRead), walletHandler.ListTransactions)
		wallet.GET("/deposit/:reference/status", rl("wallet_read"), middleware.RequirePermission(domain.PermissionRead), walletHandler.DepositStatus)
	}

	return r
}
