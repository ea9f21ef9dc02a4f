package services

import (
	"github.com/newswire-apps/newsquiz-service/internal/cache"
	"github.com/newswire-apps/newsquiz-service/internal/events"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

// ServiceManager bundles the services the HTTP layer depends on.
type ServiceManager interface {
	Article() ArticleService
	Quiz() QuizService
	Grading() GradingService
	Comment() CommentService
	Export() ExportService
}

type serviceManager struct {
	article ArticleService
	quiz    QuizService
	grading GradingService
	comment CommentService
	export  ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	generator QuizGenerator,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger utils.Logger,
	passingScore int,
) ServiceManager {
	grading := NewGradingService(repo, publisher, logger, passingScore)

	return &serviceManager{
		article: NewArticleService(repo),
		quiz:    NewQuizService(repo, generator, cacheService, publisher, logger),
		grading: grading,
		comment: NewCommentService(repo, grading, logger),
		export:  NewExportService(repo, logger),
	}
}

func (m *serviceManager) Article() ArticleService { return m.article }
func (m *serviceManager) Quiz() QuizService       { return m.quiz }
func (m *serviceManager) Grading() GradingService { return m.grading }
func (m *serviceManager) Comment() CommentService { return m.comment }
func (m *serviceManager) Export() ExportService   { return m.export }
