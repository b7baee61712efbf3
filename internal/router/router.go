// Package router assembles the HTTP surface of the API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gulfacorns/internal/docs" // Import swagger docs
	"gulfacorns/internal/handlers"
	"gulfacorns/internal/middleware"
	"gulfacorns/internal/services"
)

// Options configures the routes that depend on deployment settings.
type Options struct {
	// DemoUserID is the user every /api/v1 request acts on behalf of.
	DemoUserID string
	// MigrationToken guards the admin migration endpoint; empty disables it.
	MigrationToken string
	// Migrator backs the admin migration endpoint.
	Migrator handlers.Migrator
}

// New builds the Gin engine with middleware and all API routes.
func New(svc *services.Services, opts Options) *gin.Engine {
	ruleHandler := handlers.NewRuleHandler(svc.Rule)
	purchaseHandler := handlers.NewPurchaseHandler(svc.Purchase)
	ledgerHandler := handlers.NewLedgerHandler(svc.Ledger)
	investHandler := handlers.NewInvestHandler(svc.Invest)
	feedHandler := handlers.NewFeedHandler(svc.Feed)
	statementHandler := handlers.NewStatementHandler(svc.Statement)

	router := gin.New()
	router.NoRoute(middleware.NotFound())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.DemoUser(opts.DemoUserID))

	v1.GET("/rule", ruleHandler.GetRule)
	v1.PUT("/rule", ruleHandler.SetRule)

	purchases := v1.Group("/purchases")
	purchases.POST("", purchaseHandler.CreatePurchase)
	purchases.GET("", purchaseHandler.GetPurchases)

	ledger := v1.Group("/ledger")
	ledger.GET("", ledgerHandler.GetEntries)
	ledger.GET("/pending", ledgerHandler.GetPending)

	invest := v1.Group("/invest")
	invest.POST("", investHandler.Invest)
	invest.GET("/lots", investHandler.GetLots)

	v1.GET("/feed", feedHandler.GetFeed)
	v1.GET("/statement", statementHandler.GetStatement)

	if opts.Migrator != nil {
		admin := v1.Group("/admin")
		admin.Use(middleware.MigrationToken(opts.MigrationToken))
		admin.POST("/migrations", handlers.NewAdminHandler(opts.Migrator).RunMigrations)
	}

	return router
}
