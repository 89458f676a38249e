package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/application/ticket/usecases"
	"scalehouse/internal/shared/logger"
	"scalehouse/internal/shared/utils"
)

type TicketHandler struct {
	issueTicketUC   *usecases.IssueTicketUseCase
	getTicketUC     *usecases.GetTicketUseCase
	searchTicketsUC *usecases.SearchTicketsUseCase
	getDocumentUC   *usecases.GetDocumentUseCase
	printTicketUC   *usecases.PrintTicketUseCase
	logger          logger.Interface
}

func NewTicketHandler(
	issueTicketUC *usecases.IssueTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	searchTicketsUC *usecases.SearchTicketsUseCase,
	getDocumentUC *usecases.GetDocumentUseCase,
	printTicketUC *usecases.PrintTicketUseCase,
) *TicketHandler {
	return &TicketHandler{
		issueTicketUC:   issueTicketUC,
		getTicketUC:     getTicketUC,
		searchTicketsUC: searchTicketsUC,
		getDocumentUC:   getDocumentUC,
		printTicketUC:   printTicketUC,
		logger:          logger.NewLogger(),
	}
}

// IssueTicket handles POST /tickets
func (h *TicketHandler) IssueTicket(c *gin.Context) {
	var req dto.IssueTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for issue ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.issueTicketUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket issued successfully")
}

// SearchTickets handles GET /tickets
func (h *TicketHandler) SearchTickets(c *gin.Context) {
	var req dto.SearchTicketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.searchTicketsUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /tickets/:number
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), c.Param("number"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetDocument handles GET /tickets/:number/document
func (h *TicketHandler) GetDocument(c *gin.Context) {
	number := c.Param("number")
	blob, err := h.getDocumentUC.Execute(c.Request.Context(), number)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", blob)
}

// PrintTicket handles POST /tickets/:number/print
func (h *TicketHandler) PrintTicket(c *gin.Context) {
	number := c.Param("number")
	if err := h.printTicketUC.Execute(c.Request.Context(), number); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket sent to printer", gin.H{"ticket_number": number})
}
