package v1

import (
	"cfpanel/api/v1/account"
	"cfpanel/api/v1/analytics"
	"cfpanel/api/v1/auth"
	"cfpanel/api/v1/billing"
	"cfpanel/api/v1/dns"
	"cfpanel/api/v1/middleware"
	"cfpanel/api/v1/requests"
	"cfpanel/api/v1/zones"
	accountstore "cfpanel/internal/account"
	"cfpanel/internal/action"
	"cfpanel/internal/config"
	"cfpanel/internal/httpx"
	"cfpanel/internal/panel"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries the shared services the route handlers depend on
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Store    *accountstore.Store
	Source   *panel.ClientSource
	Recorder *action.Recorder
}

// SetupRouter sets up the API v1 routes
func SetupRouter(r *gin.Engine, deps Deps) {
	v1 := r.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.GET("/ping", pingHandler)

		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", auth.LoginHandler(deps.DB, deps.Config))
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/me", meHandler)

			accountHandler := account.NewHandler(deps.Store)
			accountGroup := protected.Group("/account")
			{
				accountGroup.GET("", accountHandler.Get)
				accountGroup.POST("", accountHandler.Save)
			}

			zonesHandler := zones.NewHandler(deps.Source, deps.Store, deps.Config.ZoneCache)
			zonesGroup := protected.Group("/zones")
			{
				zonesGroup.GET("", zonesHandler.List)
				zonesGroup.POST("/select", zonesHandler.Select)
			}

			analyticsHandler := analytics.NewHandler(deps.Source)
			protected.GET("/analytics", analyticsHandler.Get)

			billingHandler := billing.NewHandler(deps.Source)
			protected.GET("/billing/cost", billingHandler.Cost)

			dnsHandler := dns.NewHandler(deps.Source)
			dnsGroup := protected.Group("/dns")
			{
				dnsGroup.GET("/records", dnsHandler.List)
				dnsGroup.POST("/records/create", dnsHandler.Create)
				dnsGroup.POST("/records/update", dnsHandler.Update)
			}

			requestsHandler := requests.NewHandler(deps.Source, deps.Recorder)
			requestsGroup := protected.Group("/requests")
			{
				requestsGroup.GET("", requestsHandler.List)
				requestsGroup.GET("/actions", requestsHandler.Actions)
				requestsGroup.POST("/actions/dispatch", requestsHandler.Dispatch)
				requestsGroup.GET("/actions/history", requestsHandler.History)
			}
		}
	}
}

// pingHandler handles the ping request using unified response
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"pong": true,
	})
}

// meHandler returns current user information
func meHandler(c *gin.Context) {
	uid, _ := c.Get("uid")
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	httpx.OK(c, gin.H{
		"uid":      uid,
		"username": username,
		"role":     role,
	})
}
