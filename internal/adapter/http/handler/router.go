package handler

import (
	"github.com/Bamzhie/hedera/internal/adapter/http/middleware"
	"github.com/Bamzhie/hedera/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	HealthCheckers []ports.HealthChecker
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

	// Health check (deep — verifies PostgreSQL, plus Redis when enabled)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	ledger := r.Group("/hedera")
	{
		ledger.POST("/create-account", ledgerHandler.CreateAccount)
		ledger.POST("/transfer", ledgerHandler.TransferHbar)
		ledger.GET("/balance/:account_id", ledgerHandler.QueryBalance)
		ledger.GET("/create-token", ledgerHandler.CreateToken)
		ledger.GET("/details", ledgerHandler.AccountDetails)
	}

	return r
}
