package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/api/handlers"
	"github.com/spiceterra/webapi/internal/api/middleware"
	"github.com/spiceterra/webapi/internal/cart"
	"github.com/spiceterra/webapi/internal/config"
	"github.com/spiceterra/webapi/internal/wizard"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, store *cart.Store, booking *wizard.Booking, order *wizard.Order, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Menu and marketing content
		v1.GET("/menu", handlers.HandleMenu())
		v1.GET("/menu/search", handlers.HandleMenuSearch())
		v1.GET("/catalog", handlers.HandleCatalog())
		v1.GET("/content/testimonials", handlers.HandleTestimonials())
		v1.GET("/content/offers", handlers.HandleOffers())

		// Cart
		v1.GET("/cart", handlers.HandleGetCart(store))
		v1.POST("/cart/items", handlers.HandleAddItem(store, logger))
		v1.PUT("/cart/items/:id/quantity", handlers.HandleUpdateQuantity(store, logger))
		v1.DELETE("/cart/items/:id", handlers.HandleRemoveItem(store))
		v1.DELETE("/cart", handlers.HandleClearCart(store))

		// Reservation wizard
		bookingRoutes := v1.Group("/booking")
		{
			bookingRoutes.GET("", handlers.HandleBookingState(booking))
			bookingRoutes.POST("/guests", handlers.HandleBookingGuests(booking))
			bookingRoutes.POST("/date", handlers.HandleBookingDate(booking, logger))
			bookingRoutes.POST("/time", handlers.HandleBookingTime(booking, logger))
			bookingRoutes.POST("/contact", handlers.HandleBookingContact(booking))
			bookingRoutes.POST("/advance", handlers.HandleBookingAdvance(booking, logger))
			bookingRoutes.POST("/back", handlers.HandleBookingBack(booking, logger))
			bookingRoutes.POST("/confirm", handlers.HandleBookingConfirm(booking, logger))
			bookingRoutes.POST("/restart", handlers.HandleBookingRestart(booking))
		}

		// Ordering wizard
		orderRoutes := v1.Group("/order")
		{
			orderRoutes.GET("", handlers.HandleOrderState(order, store))
			orderRoutes.POST("/category", handlers.HandleOrderCategory(order, store, logger))
			orderRoutes.POST("/items", handlers.HandleOrderAddItem(order, store, logger))
			orderRoutes.POST("/review/quantity", handlers.HandleOrderQuantity(order, store))
			orderRoutes.POST("/review/remove", handlers.HandleOrderRemove(order, store))
			orderRoutes.POST("/delivery", handlers.HandleOrderDelivery(order, store))
			orderRoutes.POST("/advance", handlers.HandleOrderAdvance(order, store, logger))
			orderRoutes.POST("/back", handlers.HandleOrderBack(order, store, logger))
			orderRoutes.POST("/confirm", handlers.HandleOrderConfirm(order, store, logger))
			orderRoutes.POST("/restart", handlers.HandleOrderRestart(order, store))
		}

		// External hand-off
		v1.POST("/handoff/whatsapp", handlers.HandleWhatsAppBill(cfg, store, logger))
		v1.POST("/handoff/support", handlers.HandleWhatsAppSupport(cfg))
		v1.GET("/handoff/receipt", handlers.HandleReceipt(cfg, store, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
