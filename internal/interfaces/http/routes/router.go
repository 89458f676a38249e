package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scalehouse/internal/interfaces/http/middleware"
	"scalehouse/internal/shared/logger"
)

type RouterConfig struct {
	Ticket  *TicketRouteConfig
	Jobs    *JobsRouteConfig
	Catalog *CatalogRouteConfig
	Report  *ReportRouteConfig
}

// NewRouter assembles the gin engine with middleware and all route
// groups under /api/v1.
func NewRouter(config *RouterConfig, log logger.Interface) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery(log))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	SetupTicketRoutes(v1, config.Ticket)
	SetupJobsRoutes(v1, config.Jobs)
	SetupCatalogRoutes(v1, config.Catalog)
	SetupReportRoutes(v1, config.Report)

	return engine
}
