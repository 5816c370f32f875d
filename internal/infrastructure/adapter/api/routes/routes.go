package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/vesting-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/vesting-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Account    *handler.AccountHandler
	Transfer   *handler.TransferHandler
	Lock       *handler.LockHandler
	Governance *handler.GovernanceHandler
	Health     *handler.HealthHandler
	// Metrics serves the scrape endpoint at MetricsPath; nil disables it
	Metrics     http.Handler
	MetricsPath string
}

// MiddlewareOptions selects the optional middlewares
type MiddlewareOptions struct {
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
	Metrics        middleware.HTTPMetrics
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(h.Metrics))
	}

	accounts := router.Group("/accounts/:address")
	{
		accounts.GET("", h.Account.GetAccount)
		accounts.GET("/balance", h.Account.GetBalance)
		accounts.GET("/locked-balance", h.Account.GetLockedBalance)
		accounts.GET("/locks", h.Account.GetLocks)
		accounts.GET("/allowances/:spender", h.Account.GetAllowance)
	}

	transfers := router.Group("/transfers")
	{
		transfers.POST("", h.Transfer.Transfer)
		transfers.POST("/batch", h.Transfer.MultiTransfer)
		transfers.POST("/delegated", h.Transfer.TransferFrom)
	}
	router.POST("/approvals", h.Transfer.Approve)
	router.POST("/burns", h.Transfer.Burn)

	locks := router.Group("/locks")
	{
		locks.POST("/pre-listing", h.Lock.CreatePreListingLocks)
		locks.POST("/post-listing", h.Lock.CreatePostListingLocks)
	}

	router.GET("/token", h.Governance.GetToken)
	governance := router.Group("/governance")
	{
		governance.PUT("/owner", h.Governance.TransferOwnership)
		governance.GET("/controllers", h.Governance.GetControllers)
		governance.PUT("/controllers", h.Governance.SetControllers)
		governance.GET("/listing", h.Governance.GetListing)
		governance.PUT("/listing", h.Governance.SetListing)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, opts MiddlewareOptions) {
	// Order matters: the request id must exist before anything logs
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Handler())
	}
}
