package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ai/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AIHandler struct {
	draftReplyUC *usecases.DraftReplyUseCase
	logger       logger.Interface
}

func NewAIHandler(draftReplyUC *usecases.DraftReplyUseCase, logger logger.Interface) *AIHandler {
	return &AIHandler{
		draftReplyUC: draftReplyUC,
		logger:       logger,
	}
}

type DraftReplyRequest struct {
	TicketID uint   `json:"ticket_id" binding:"required"`
	Tone     string `json:"tone"`
}

// DraftReply handles POST /ai/draft-reply
func (h *AIHandler) DraftReply(c *gin.Context) {
	var req DraftReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, err)
		return
	}

	cmd := usecases.DraftReplyCommand{
		OrgID:    c.GetUint(constants.ContextKeyOrgID),
		TicketID: req.TicketID,
		Tone:     req.Tone,
	}

	result, err := h.draftReplyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"draft": result.Draft,
		"tone":  string(result.Tone),
	})
}
