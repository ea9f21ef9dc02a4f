package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newswire-apps/newsquiz-service/internal/services"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

type CommentHandler struct {
	BaseHandler
	commentService services.CommentService
	validator      *utils.Validator
}

func NewCommentHandler(commentService services.CommentService, validator *utils.Validator, logger utils.Logger) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    NewBaseHandler(logger),
		commentService: commentService,
		validator:      validator,
	}
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// PostComment creates a comment; the service enforces the passed-quiz gate.
func (h *CommentHandler) PostComment(c *gin.Context) {
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

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Comment cannot be empty", err)
		return
	}

	comment, err := h.commentService.Post(c.Request.Context(), userID, articleID, req.Content)
	if err != nil {
		h.respondCommentError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Your comment has been posted", comment)
}

// ListComments returns an article's comments, oldest first.
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, ok := uintParam(c, "id")
	if !ok {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid article id", nil)
		return
	}

	comments, err := h.commentService.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to list comments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// UpdateComment edits a comment; only the author may edit.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := uintParam(c, "id")
	if !ok {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid comment id", nil)
		return
	}
	userID, ok := requestUserID(c)
	if !ok {
		h.RespondWithError(c, http.StatusUnauthorized, "Missing user identity", nil)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), userID, commentID, req.Content)
	if err != nil {
		h.respondCommentError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Your comment has been updated", comment)
}

// DeleteComment removes a comment; only the author may delete.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := uintParam(c, "id")
	if !ok {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid comment id", nil)
		return
	}
	userID, ok := requestUserID(c)
	if !ok {
		h.RespondWithError(c, http.StatusUnauthorized, "Missing user identity", nil)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		h.respondCommentError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Your comment has been deleted", nil)
}

func (h *CommentHandler) respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCommentEmpty):
		h.RespondWithError(c, http.StatusBadRequest, "Comment cannot be empty", nil)
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, "Not found", nil)
	case services.IsForbidden(err):
		h.RespondWithError(c, http.StatusForbidden, err.Error(), nil)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Comment operation failed", err)
	}
}
