package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newswire-apps/newsquiz-service/internal/services"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

type QuizHandler struct {
	BaseHandler
	quizService    services.QuizService
	gradingService services.GradingService
	validator      *utils.Validator
}

func NewQuizHandler(quizService services.QuizService, gradingService services.GradingService, validator *utils.Validator, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler:    NewBaseHandler(logger),
		quizService:    quizService,
		gradingService: gradingService,
		validator:      validator,
	}
}

// SubmitQuizRequest is the submission payload. Responses map question_<index>
// keys to the chosen option text.
type SubmitQuizRequest struct {
	ArticleID uint              `json:"article_id" validate:"required"`
	Responses map[string]string `json:"responses" validate:"required"`
}

// GetQuiz returns the article's quiz, generating it on first access.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	articleID, ok := uintParam(c, "id")
	if !ok {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid article id", nil)
		return
	}

	quiz, err := h.quizService.EnsureQuiz(c.Request.Context(), articleID)
	if err != nil {
		switch {
		case services.IsNotFound(err):
			h.RespondWithError(c, http.StatusNotFound, "Article not found", nil)
		case services.IsGenerationFailure(err):
			h.RespondWithError(c, http.StatusServiceUnavailable, "Quiz unavailable, try again later", err)
		default:
			h.RespondWithError(c, http.StatusInternalServerError, "Failed to load quiz", err)
		}
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Quiz ready", quiz)
}

// SubmitQuiz grades a submission and saves the attempt record.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		h.RespondWithError(c, http.StatusUnauthorized, "Missing user identity", nil)
		return
	}

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid submission", err)
		return
	}

	result, err := h.gradingService.SubmitAnswers(c.Request.Context(), userID, req.ArticleID, req.Responses)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			h.RespondWithError(c, http.StatusUnauthorized, "Unknown user", nil)
		case services.IsNotFound(err):
			h.RespondWithError(c, http.StatusNotFound, "Quiz not found for this article", nil)
		case errors.Is(err, services.ErrMalformedStoredQuiz):
			h.RespondWithError(c, http.StatusInternalServerError, "Quiz data corrupted", err)
		default:
			h.RespondWithError(c, http.StatusInternalServerError, "Failed to grade submission", err)
		}
		return
	}

	message := "Quiz not passed."
	if result.Passed {
		message = "Quiz passed."
	}
	h.RespondWithSuccess(c, http.StatusOK, message, result)
}

// HasPassed exposes the commenting gate predicate.
func (h *QuizHandler) HasPassed(c *gin.Context) {
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

	passed, err := h.gradingService.HasPassed(c.Request.Context(), userID, articleID)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to check quiz state", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"passed": passed})
}
