// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"moneyharbor/internal/handlers"
	"moneyharbor/internal/middleware"

	_ "moneyharbor/internal/docs" // swagger docs
)

// Handlers groups the route handlers the router mounts.
type Handlers struct {
	Recommendation *handlers.RecommendationHandler
	Report         *handlers.ReportHandler
	Guide          *handlers.GuideHandler
	News           *handlers.NewsHandler
	Lead           *handlers.LeadHandler
	History        *handlers.HistoryHandler
	Reminder       *handlers.ReminderHandler
	Catalog        *handlers.CatalogHandler
}

// NewRouter builds the gin engine with middleware and all API routes.
// Admin routes answer 503 while adminAPIKey is empty.
func NewRouter(h Handlers, adminAPIKey string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/recommendations", h.Recommendation.Recommend)
	v1.POST("/reports", h.Report.SendReport)
	v1.POST("/guides", h.Guide.ExpandGuide)
	v1.GET("/news", h.News.GetNews)
	v1.POST("/reminders", h.Reminder.CreateReminder)

	v1.GET("/catalog", h.Catalog.GetCatalog)
	v1.GET("/catalog/:id", h.Catalog.GetOption)
	v1.GET("/platforms", h.Catalog.GetPlatforms)
	v1.GET("/platforms/lookup", h.Catalog.LookupPlatform)

	harbor := v1.Group("/harbor")
	harbor.GET("/:client_id", h.History.GetHarbor)
	harbor.PATCH("/:client_id/batches/:id", h.History.UpdateBatchStatus)

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(adminAPIKey))
	admin.GET("/leads", h.Lead.GetLeads)
	admin.GET("/leads/stats", h.Lead.GetLeadStats)
	admin.GET("/leads/:id", h.Lead.GetLead)

	return router
}
