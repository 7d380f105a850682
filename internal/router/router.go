package router

import (
	"time"

	"github.com/beacon-dev/beacon/internal/config"
	"github.com/beacon-dev/beacon/internal/handlers"
	"github.com/beacon-dev/beacon/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.Index)
	r.GET("/health", handlers.HealthCheck)

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/login", handlers.LoginPage)
		dashboard.POST("/login", handlers.Login)
		dashboard.POST("/register", handlers.Register)

		authed := dashboard.Group("", middleware.AuthRequired())
		{
			authed.GET("", handlers.Dashboard)
			authed.POST("/logout", handlers.Logout)

			// Incident lifecycle
			authed.GET("/incident/new", handlers.NewIncidentForm)
			authed.POST("/incident/new", handlers.CreateIncident)
			authed.GET("/incident/:id", handlers.IncidentDetail)
			authed.POST("/incident/:id", handlers.PostIncidentUpdate)

			// Service management
			authed.POST("/service/new", handlers.CreateService)
			authed.POST("/service/:id", handlers.UpdateService)
			authed.POST("/service/:id/status", handlers.UpdateServiceStatus)
			authed.POST("/service/:id/delete", handlers.DeleteService)

			// Site settings
			authed.GET("/settings", handlers.GetSettings)
			authed.POST("/settings", handlers.UpdateSettings)
		}
	}

	return r
}
