package routes

import (
	"github.com/gin-gonic/gin"

	jobshandlers "scalehouse/internal/interfaces/http/handlers/jobs"
)

type JobsRouteConfig struct {
	JobsHandler *jobshandlers.JobsHandler
}

func SetupJobsRoutes(group *gin.RouterGroup, config *JobsRouteConfig) {
	jobs := group.Group("/jobs")
	{
		jobs.GET("", config.JobsHandler.ListJobs)
		jobs.POST("/refresh", config.JobsHandler.RefreshJobs)
	}
}
