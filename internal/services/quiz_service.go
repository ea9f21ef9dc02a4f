package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newswire-apps/newsquiz-service/internal/cache"
	"github.com/newswire-apps/newsquiz-service/internal/events"
	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

const quizCacheTTL = 24 * time.Hour

// QuizGenerator produces a validated question set from article content.
// Satisfied by *generation.Generator.
type QuizGenerator interface {
	Generate(ctx context.Context, content string) ([]models.Question, error)
}

// QuizService owns the quiz lifecycle: get-or-create with the generate-once
// guarantee.
type QuizService interface {
	// EnsureQuiz returns the article's quiz, generating and persisting it on
	// first access. An existing quiz is returned unchanged, never
	// regenerated. On any generation or storage failure nothing is
	// persisted and the error surfaces to the caller.
	EnsureQuiz(ctx context.Context, articleID uint) (*models.Quiz, error)

	// GetQuiz returns the stored quiz without triggering generation, or
	// ErrQuizNotFound.
	GetQuiz(ctx context.Context, articleID uint) (*models.Quiz, error)
}

type quizService struct {
	repo      repositories.Repository
	generator QuizGenerator
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    utils.Logger
}

func NewQuizService(
	repo repositories.Repository,
	generator QuizGenerator,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger utils.Logger,
) QuizService {
	return &quizService{
		repo:      repo,
		generator: generator,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *quizService) EnsureQuiz(ctx context.Context, articleID uint) (*models.Quiz, error) {
	// Fast path: cached quiz.
	var cached models.Quiz
	if err := s.cache.Get(ctx, cache.QuizKey(articleID), &cached); err == nil {
		return &cached, nil
	}

	// Existing quiz wins; first access is the only time generation runs.
	quiz, err := s.repo.Quiz().GetByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quiz: %w", err)
	}
	if quiz != nil {
		s.cacheQuiz(ctx, quiz)
		return quiz, nil
	}

	article, err := s.repo.Article().GetByID(ctx, articleID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	s.logger.InfoContext(ctx, "no quiz found, generating", "article_id", articleID)

	questions, err := s.generator.Generate(ctx, article.Content)
	if err != nil {
		// Nothing persisted; the caller shows "quiz unavailable".
		return nil, err
	}

	payload, err := models.MarshalQuestions(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize questions: %w", err)
	}

	quiz = &models.Quiz{
		ArticleID: articleID,
		Questions: payload,
	}

	if err := s.repo.Quiz().Create(ctx, quiz); err != nil {
		if errors.Is(err, repositories.ErrDuplicateQuiz) {
			// Lost the creation race; the winner's quiz is the canonical one.
			s.logger.InfoContext(ctx, "quiz already created by concurrent request", "article_id", articleID)
			existing, fetchErr := s.repo.Quiz().GetByArticle(ctx, articleID)
			if fetchErr != nil {
				return nil, fmt.Errorf("failed to re-fetch quiz after duplicate insert: %w", fetchErr)
			}
			if existing == nil {
				return nil, fmt.Errorf("quiz vanished after duplicate insert for article %d", articleID)
			}
			s.cacheQuiz(ctx, existing)
			return existing, nil
		}
		return nil, fmt.Errorf("failed to store quiz: %w", err)
	}

	s.logger.InfoContext(ctx, "quiz generated",
		"article_id", articleID,
		"quiz_id", quiz.ID,
		"questions", len(questions))

	if err := s.publisher.PublishQuizEvent(ctx, events.NewQuizGeneratedEvent(articleID, quiz.ID)); err != nil {
		// Event delivery is best effort; the quiz itself is committed.
		s.logger.Warn("failed to publish quiz.generated event", "quiz_id", quiz.ID, "error", err)
	}

	s.cacheQuiz(ctx, quiz)
	return quiz, nil
}

func (s *quizService) GetQuiz(ctx context.Context, articleID uint) (*models.Quiz, error) {
	var cached models.Quiz
	if err := s.cache.Get(ctx, cache.QuizKey(articleID), &cached); err == nil {
		return &cached, nil
	}

	quiz, err := s.repo.Quiz().GetByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quiz: %w", err)
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	s.cacheQuiz(ctx, quiz)
	return quiz, nil
}

func (s *quizService) cacheQuiz(ctx context.Context, quiz *models.Quiz) {
	if err := s.cache.Set(ctx, cache.QuizKey(quiz.ArticleID), quiz, quizCacheTTL); err != nil {
		s.logger.Warn("failed to cache quiz", "quiz_id", quiz.ID, "error", err)
	}
}
