package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/org/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type OrgHandler struct {
	createOrgUC *usecases.CreateOrgUseCase
	listOrgsUC  *usecases.ListOrgsUseCase
	deleteOrgUC *usecases.DeleteOrgUseCase
	logger      logger.Interface
}

func NewOrgHandler(
	createOrgUC *usecases.CreateOrgUseCase,
	listOrgsUC *usecases.ListOrgsUseCase,
	deleteOrgUC *usecases.DeleteOrgUseCase,
	logger logger.Interface,
) *OrgHandler {
	return &OrgHandler{
		createOrgUC: createOrgUC,
		listOrgsUC:  listOrgsUC,
		deleteOrgUC: deleteOrgUC,
		logger:      logger,
	}
}

type CreateOrgRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateOrg handles POST /orgs
func (h *OrgHandler) CreateOrg(c *gin.Context) {
	var req CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, err)
		return
	}

	result, err := h.createOrgUC.Execute(c.Request.Context(), usecases.CreateOrgCommand{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewOrgResponse(result), "Organization created successfully")
}

// ListOrgs handles GET /orgs
func (h *OrgHandler) ListOrgs(c *gin.Context) {
	result, err := h.listOrgsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewOrgResponses(result))
}

// DeleteOrg handles DELETE /orgs/:id
func (h *OrgHandler) DeleteOrg(c *gin.Context) {
	orgID, err := utils.ParseUintParam(c, "id", "org")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteOrgUC.Execute(c.Request.Context(), usecases.DeleteOrgCommand{OrgID: orgID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization deleted successfully", nil)
}
