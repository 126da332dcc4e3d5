package routes

import (
	"net/http"
	"time"

	"incubator-admin/internal/assistant"
	"incubator-admin/internal/config"
	"incubator-admin/internal/delivery/http/handler"
	"incubator-admin/internal/logger"
	"incubator-admin/internal/memory"
	"incubator-admin/internal/metrics"
	"incubator-admin/internal/middleware"
	"incubator-admin/internal/usecase/device"
	"incubator-admin/internal/usecase/order"
	"incubator-admin/internal/usecase/product"
	"incubator-admin/internal/usecase/template"
	"incubator-admin/internal/usecase/ticket"
	"incubator-admin/internal/usecase/user"
	"incubator-admin/internal/usecase/warranty"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
)

func SetupRoutes(cfg *config.Config, stores *memory.Stores) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers, CORS, request size limit, rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	deviceService := device.NewService(stores.Devices)
	deviceHandler := handler.NewDeviceHandler(deviceService)

	productService := product.NewService(stores.Products)
	productHandler := handler.NewProductHandler(productService)

	orderService := order.NewService(stores.Orders)
	orderWizard := order.NewWizard(stores.Orders, stores.Products)
	orderHandler := handler.NewOrderHandler(orderService, orderWizard)

	templateService := template.NewService(stores.Templates)
	templateHandler := handler.NewTemplateHandler(templateService)

	ticketService := ticket.NewService(stores.Tickets)
	ticketHandler := handler.NewTicketHandler(ticketService)

	userService := user.NewService(stores.Users)
	userHandler := handler.NewUserHandler(userService)

	warrantyService := warranty.NewService(stores.Warranties)
	warrantyHandler := handler.NewWarrantyHandler(warrantyService)

	responder := assistant.NewResponder(time.Duration(cfg.Assistant.DelayMillis) * time.Millisecond)
	assistantHandler := handler.NewAssistantHandler(responder)

	dashboardHandler := handler.NewDashboardHandler(metrics.NewFixtureProvider())

	// Short-lived cache in front of the statistic and dashboard reads.
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)

	v1 := router.Group("/api/v1")
	{
		deviceHandler.RegisterRoutes(v1)
		productHandler.RegisterRoutes(v1)
		orderHandler.RegisterRoutes(v1)
		templateHandler.RegisterRoutes(v1)
		ticketHandler.RegisterRoutes(v1)
		userHandler.RegisterRoutes(v1)
		warrantyHandler.RegisterRoutes(v1)
		assistantHandler.RegisterRoutes(v1)

		cached := v1.Group("")
		cached.Use(middleware.CacheMiddleware(cacheStore, cacheTTL))
		{
			dashboardHandler.RegisterRoutes(cached)
		}
	}

	logger.Info("All routes initialized")
	return router
}
