package jobs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scalehouse/internal/application/jobs/usecases"
	"scalehouse/internal/shared/logger"
	"scalehouse/internal/shared/utils"
)

type JobsHandler struct {
	refreshJobsUC *usecases.RefreshJobsUseCase
	listJobsUC    *usecases.ListJobsUseCase
	logger        logger.Interface
}

func NewJobsHandler(
	refreshJobsUC *usecases.RefreshJobsUseCase,
	listJobsUC *usecases.ListJobsUseCase,
) *JobsHandler {
	return &JobsHandler{
		refreshJobsUC: refreshJobsUC,
		listJobsUC:    listJobsUC,
		logger:        logger.NewLogger(),
	}
}

// ListJobs handles GET /jobs
func (h *JobsHandler) ListJobs(c *gin.Context) {
	result, err := h.listJobsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RefreshJobs handles POST /jobs/refresh
func (h *JobsHandler) RefreshJobs(c *gin.Context) {
	result, err := h.refreshJobsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Jobs cache refreshed", result)
}
