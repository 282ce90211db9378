package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	getTicketUC    *usecases.GetTicketUseCase
	addMessageUC   *usecases.AddMessageUseCase
	updateTicketUC *usecases.UpdateTicketUseCase
	deleteTicketUC *usecases.DeleteTicketUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	addMessageUC *usecases.AddMessageUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	deleteTicketUC *usecases.DeleteTicketUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		addMessageUC:   addMessageUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		logger:         logger,
	}
}

type CreateTicketRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Priority string `json:"priority"`
}

type AddMessageRequest struct {
	Content string `json:"content" binding:"required"`
	Role    string `json:"role"`
}

type UpdateTicketRequest struct {
	Subject  *string `json:"subject"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, err)
		return
	}

	cmd := usecases.CreateTicketCommand{
		OrgID:    c.GetUint(constants.ContextKeyOrgID),
		Subject:  req.Subject,
		Priority: req.Priority,
		Message:  req.Message,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewTicketWithMessagesResponse(result), "Ticket created successfully")
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	cmd := usecases.ListTicketsCommand{
		OrgID:  c.GetUint(constants.ContextKeyOrgID),
		Limit:  utils.QueryInt(c, "limit", 0),
		Offset: utils.QueryInt(c, "offset", 0),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewTicketResponses(result.Tickets), result.Total, result.Limit, result.Offset)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GetTicketCommand{
		OrgID:    c.GetUint(constants.ContextKeyOrgID),
		TicketID: ticketID,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewTicketWithMessagesResponse(result))
}

// AddMessage handles POST /tickets/:id/messages
func (h *TicketHandler) AddMessage(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, err)
		return
	}

	cmd := usecases.AddMessageCommand{
		OrgID:    c.GetUint(constants.ContextKeyOrgID),
		TicketID: ticketID,
		Role:     req.Role,
		Content:  req.Content,
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"ticket":  NewTicketResponse(result.Ticket),
		"message": NewMessageResponse(result.Message),
	}, "Message added successfully")
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, err)
		return
	}

	cmd := usecases.UpdateTicketCommand{
		OrgID:    c.GetUint(constants.ContextKeyOrgID),
		TicketID: ticketID,
		Subject:  req.Subject,
		Status:   req.Status,
		Priority: req.Priority,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", NewTicketResponse(result))
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		OrgID:    c.GetUint(constants.ContextKeyOrgID),
		TicketID: ticketID,
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}
