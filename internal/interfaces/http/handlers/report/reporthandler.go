package report

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/application/ticket/usecases"
	"scalehouse/internal/shared/logger"
	"scalehouse/internal/shared/utils"
)

type ReportHandler struct {
	getReportUC      *usecases.GetReportUseCase
	exportCSVUC      *usecases.ExportReportCSVUseCase
	reportDocumentUC *usecases.ReportDocumentUseCase
	logger           logger.Interface
}

func NewReportHandler(
	getReportUC *usecases.GetReportUseCase,
	exportCSVUC *usecases.ExportReportCSVUseCase,
	reportDocumentUC *usecases.ReportDocumentUseCase,
) *ReportHandler {
	return &ReportHandler{
		getReportUC:      getReportUC,
		exportCSVUC:      exportCSVUC,
		reportDocumentUC: reportDocumentUC,
		logger:           logger.NewLogger(),
	}
}

// GetReport handles GET /reports/tickets
func (h *ReportHandler) GetReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getReportUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportCSV handles GET /reports/tickets/csv
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exportCSVUC.Execute(c.Request.Context(), req, &buf); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ticket-report.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// GetDocument handles GET /reports/tickets/pdf
func (h *ReportHandler) GetDocument(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	blob, err := h.reportDocumentUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="ticket-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", blob)
}
