package services

import (
	"context"
	"fmt"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
)

// ArticleView is what the article page needs: the article, whether a quiz
// exists, and the requesting user's saved quiz state.
type ArticleView struct {
	Article   *models.Article           `json:"article"`
	HasQuiz   bool                      `json:"has_quiz"`
	Attempted bool                      `json:"quiz_attempted"`
	Passed    bool                      `json:"quiz_passed"`
	Score     *int                      `json:"saved_score"`
	Feedback  []models.QuestionFeedback `json:"saved_feedback"`
}

// ArticleService reads ingested articles. Ingestion itself lives in the
// fetcher job.
type ArticleService interface {
	List(ctx context.Context, page, perPage int) ([]*models.Article, int64, error)
	// GetView assembles the article page for one user: article plus the
	// user's attempt state against the article's quiz, if any.
	GetView(ctx context.Context, userID, articleID uint) (*ArticleView, error)
}

type articleService struct {
	repo repositories.Repository
}

func NewArticleService(repo repositories.Repository) ArticleService {
	return &articleService{repo: repo}
}

func (s *articleService) List(ctx context.Context, page, perPage int) ([]*models.Article, int64, error) {
	return s.repo.Article().List(ctx, page, perPage)
}

func (s *articleService) GetView(ctx context.Context, userID, articleID uint) (*ArticleView, error) {
	article, err := s.repo.Article().GetByID(ctx, articleID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	view := &ArticleView{Article: article, Feedback: []models.QuestionFeedback{}}

	quiz, err := s.repo.Quiz().GetByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quiz: %w", err)
	}
	if quiz == nil {
		return view, nil
	}
	view.HasQuiz = true

	record, err := s.repo.Attempt().Get(ctx, userID, quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	if record == nil {
		return view, nil
	}

	view.Attempted = record.Attempted
	view.Passed = record.Passed
	view.Score = record.Score

	feedback, err := models.UnmarshalFeedback(record.Feedback)
	if err != nil {
		// A corrupt saved feedback blob degrades to "no saved results", the
		// record's flags still stand.
		feedback = []models.QuestionFeedback{}
	}
	if feedback != nil {
		view.Feedback = feedback
	}

	return view, nil
}
