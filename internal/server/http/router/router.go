package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/spinzone/backend/internal/server/http/handlers"
	"github.com/spinzone/backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/search", productHandler.Search)
	products.GET("/:id", productHandler.Get)

	productsAdmin := api.Group("/products")
	productsAdmin.Use(middleware.AuthRequired(facade))
	productsAdmin.POST("", productHandler.Create)
	productsAdmin.PUT("/:id", productHandler.Update)
	productsAdmin.PATCH("/:id", productHandler.Patch)
	productsAdmin.DELETE("/:id", productHandler.Delete)

	// Guest checkout is allowed: auth is optional but attaches the customer
	// when a valid token is present.
	payment := api.Group("/payment")
	payment.Use(middleware.AuthOptional(facade))
	payment.POST("/initiate", paymentHandler.Initiate)
	payment.POST("/confirm", paymentHandler.Confirm)
	payment.POST("/aborted", paymentHandler.Aborted)
	payment.POST("/timeout", paymentHandler.Timeout)

	return engine
}
