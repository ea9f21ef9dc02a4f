package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/newswire-apps/newsquiz-service/internal/services"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

type ArticleHandler struct {
	BaseHandler
	articleService services.ArticleService
	exportService  services.ExportService
}

func NewArticleHandler(articleService services.ArticleService, exportService services.ExportService, logger utils.Logger) *ArticleHandler {
	return &ArticleHandler{
		BaseHandler:    NewBaseHandler(logger),
		articleService: articleService,
		exportService:  exportService,
	}
}

// ListArticles returns a page of articles, newest first.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	articles, total, err := h.articleService.List(c.Request.Context(), page, perPage)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to list articles", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

// GetArticle returns the article plus the requesting user's quiz state.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, ok := uintParam(c, "id")
	if !ok {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid article id", nil)
		return
	}
	userID, ok := requestUserID(c)
	if !ok {
		h.RespondWithError(c, http.StatusUnauthorized, "Missing user identity", nil)
		return
	}

	view, err := h.articleService.GetView(c.Request.Context(), userID, articleID)
	if err != nil {
		if services.IsNotFound(err) {
			h.RespondWithError(c, http.StatusNotFound, "Article not found", nil)
			return
		}
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load article", err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ExportAttempts streams the article's quiz attempts as an xlsx workbook.
func (h *ArticleHandler) ExportAttempts(c *gin.Context) {
	articleID, ok := uintParam(c, "id")
	if !ok {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid article id", nil)
		return
	}

	data, err := h.exportService.ExportAttempts(c.Request.Context(), articleID)
	if err != nil {
		if services.IsNotFound(err) {
			h.RespondWithError(c, http.StatusNotFound, "Quiz not found for this article", nil)
			return
		}
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to export attempts", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=quiz_attempts.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
