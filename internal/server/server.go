package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/harshpatel5/Event-Ticket-System/config"
	"github.com/harshpatel5/Event-Ticket-System/internal/backend"
	"github.com/harshpatel5/Event-Ticket-System/internal/handlers"
	"github.com/harshpatel5/Event-Ticket-System/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	client := config.InitBackendClient(cfg)

	r := gin.Default()

	setupRoutes(r, cfg, client)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, cfg *config.Config, client *backend.Client) {
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.BackendMiddleware(client))
	r.Use(middleware.SessionMiddleware(cfg.JWTSecret))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/featured", handlers.FeaturedEvents)
			eventPublic.GET("/:id", handlers.GetEvent)
		}

		public.GET("/categories", handlers.ListCategories)
		public.GET("/venues", handlers.ListVenues)
		public.POST("/purchases", handlers.CreatePurchase)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/me", handlers.Me)
	}

	admin := r.Group("/v1/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/events", handlers.AdminEvents)
		admin.POST("/events", handlers.CreateEvent)
		admin.PUT("/events/:id", handlers.UpdateEvent)
		admin.DELETE("/events/:id", handlers.DeleteEvent)
	}
}
