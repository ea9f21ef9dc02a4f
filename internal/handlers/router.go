package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/newswire-apps/newsquiz-service/internal/services"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

type HandlerManager struct {
	articleHandler *ArticleHandler
	quizHandler    *QuizHandler
	commentHandler *CommentHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *utils.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		articleHandler: NewArticleHandler(serviceManager.Article(), serviceManager.Export(), logger),
		quizHandler:    NewQuizHandler(serviceManager.Quiz(), serviceManager.Grading(), validator, logger),
		commentHandler: NewCommentHandler(serviceManager.Comment(), validator, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "newsquiz-service",
		})
	})

	v1 := router.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", hm.articleHandler.ListArticles)
			articles.GET("/:id", hm.articleHandler.GetArticle)
			articles.GET("/:id/quiz", hm.quizHandler.GetQuiz)
			articles.GET("/:id/passed", hm.quizHandler.HasPassed)
			articles.GET("/:id/comments", hm.commentHandler.ListComments)
			articles.POST("/:id/comments", hm.commentHandler.PostComment)
			articles.GET("/:id/attempts/export", hm.articleHandler.ExportAttempts)
		}

		quiz := v1.Group("/quiz")
		{
			quiz.POST("/submit", hm.quizHandler.SubmitQuiz)
		}

		comments := v1.Group("/comments")
		{
			comments.PUT("/:id", hm.commentHandler.UpdateComment)
			comments.DELETE("/:id", hm.commentHandler.DeleteComment)
		}
	}
}
