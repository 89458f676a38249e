package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "scalehouse/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(group *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := group.Group("/tickets")
	{
		tickets.POST("", config.TicketHandler.IssueTicket)
		tickets.GET("", config.TicketHandler.SearchTickets)

		// Action endpoints come before the bare parameterized route.
		tickets.GET("/:number/document", config.TicketHandler.GetDocument)
		tickets.POST("/:number/print", config.TicketHandler.PrintTicket)

		tickets.GET("/:number", config.TicketHandler.GetTicket)
	}
}
