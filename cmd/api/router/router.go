package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flowmate/cmd/api/handlers"
	"flowmate/cmd/api/middleware"
	"flowmate/engine"
	"flowmate/eventbus"
	"flowmate/repositories"

	_ "flowmate/docs"
)

func New(eng *engine.Engine, leads *repositories.LeadRepository, bus eventbus.Publisher) *gin.Engine {
	if bus == nil {
		bus = eventbus.Nop{}
	}

	r := gin.Default()
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/chat/sessions", handlers.StartChatSessionHandler(eng))
		api.GET("/chat/sessions/:id", handlers.GetChatSessionHandler(eng))
		api.POST("/chat/sessions/:id/messages", handlers.SendChatMessageHandler(eng))
		api.POST("/chat/sessions/:id/actions", handlers.DispatchQuickActionHandler(eng))

		api.GET("/services", handlers.ListServicesHandler())
		api.POST("/calculator/estimate", handlers.EstimateSavingsHandler())
		api.POST("/leads", handlers.CreateLeadHandler(leads, bus))
		api.GET("/leads", handlers.ListLeadsHandler(leads))
	}

	return r
}
