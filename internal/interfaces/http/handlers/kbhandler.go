package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/kb/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type KBHandler struct {
	createArticleUC *usecases.CreateArticleUseCase
	listArticlesUC  *usecases.ListArticlesUseCase
	getArticleUC    *usecases.GetArticleUseCase
	logger          logger.Interface
}

func NewKBHandler(
	createArticleUC *usecases.CreateArticleUseCase,
	listArticlesUC *usecases.ListArticlesUseCase,
	getArticleUC *usecases.GetArticleUseCase,
	logger logger.Interface,
) *KBHandler {
	return &KBHandler{
		createArticleUC: createArticleUC,
		listArticlesUC:  listArticlesUC,
		getArticleUC:    getArticleUC,
		logger:          logger,
	}
}

type CreateArticleRequest struct {
	Title string   `json:"title" binding:"required,max=200"`
	Body  string   `json:"body" binding:"required"`
	Tags  []string `json:"tags"`
}

// CreateArticle handles POST /kb
func (h *KBHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, err)
		return
	}

	cmd := usecases.CreateArticleCommand{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	}

	result, err := h.createArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewArticleResponse(result), "Article created successfully")
}

// ListArticles handles GET /kb
func (h *KBHandler) ListArticles(c *gin.Context) {
	result, err := h.listArticlesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewArticleResponses(result))
}

// SearchArticles handles GET /kb/search?q=
func (h *KBHandler) SearchArticles(c *gin.Context) {
	cmd := usecases.SearchArticlesCommand{
		Query: c.Query("q"),
		Limit: utils.QueryInt(c, "limit", 0),
	}

	result, err := h.listArticlesUC.Search(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewArticleResponses(result))
}

// GetArticle handles GET /kb/:id
func (h *KBHandler) GetArticle(c *gin.Context) {
	articleID, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), usecases.GetArticleCommand{ArticleID: articleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := NewArticleResponse(result.Article)
	resp.RenderedBody = result.RenderedBody

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
