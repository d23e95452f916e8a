package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/michaelbartlett17/loyalty-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	ledgerHandler *handler.LedgerHandler,
	apiKey string,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.APIKeyAuth(apiKey))
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.DELETE("/:id", userHandler.Delete)

			users.POST("/:id/earn", ledgerHandler.Earn)
			users.POST("/:id/redeem", ledgerHandler.Redeem)
			users.GET("/:id/transactions", ledgerHandler.ListTransactions)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger core.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
