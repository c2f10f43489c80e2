package handler

import (
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	HealthCheckers []ports.HealthChecker
	ExposeTokens   bool // registers the token reveal route; demo rigs only
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
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	clientHandler := NewClientHandler(deps.LedgerSvc)
	clients := v1.Group("/clients")
	{
		clients.POST("/register", clientHandler.Register)
		clients.GET("", clientHandler.List)
	}

	walletHandler := NewWalletHandler(deps.LedgerSvc)
	wallet := v1.Group("/wallet")
	{
		wallet.POST("/topup", walletHandler.Topup)
		wallet.GET("/balance", walletHandler.GetBalance)
	}

	paymentHandler := NewPaymentHandler(deps.LedgerSvc)
	payments := v1.Group("/payments")
	{
		payments.POST("/initiate", paymentHandler.Initiate)
		payments.POST("/confirm", paymentHandler.Confirm)
		payments.GET("/sessions", paymentHandler.ListSessions)
		if deps.ExposeTokens {
			payments.GET("/sessions/:sessionId/token", paymentHandler.RevealToken)
		}
	}

	return r
}
