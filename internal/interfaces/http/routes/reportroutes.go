package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "scalehouse/internal/interfaces/http/handlers/report"
)

type ReportRouteConfig struct {
	ReportHandler *reporthandlers.ReportHandler
}

func SetupReportRoutes(group *gin.RouterGroup, config *ReportRouteConfig) {
	reports := group.Group("/reports")
	{
		reports.GET("/tickets", config.ReportHandler.GetReport)
		reports.GET("/tickets/csv", config.ReportHandler.ExportCSV)
		reports.GET("/tickets/pdf", config.ReportHandler.GetDocument)
	}
}
