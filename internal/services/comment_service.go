package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

// CommentService implements the discussion feature the quiz gates: posting
// requires a passed quiz for the article, editing and deleting require
// authorship.
type CommentService interface {
	Post(ctx context.Context, userID, articleID uint, content string) (*models.Comment, error)
	Update(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error)
	Delete(ctx context.Context, userID, commentID uint) error
	ListByArticle(ctx context.Context, articleID uint) ([]*models.Comment, error)
}

type commentService struct {
	repo    repositories.Repository
	grading GradingService
	logger  utils.Logger
}

func NewCommentService(repo repositories.Repository, grading GradingService, logger utils.Logger) CommentService {
	return &commentService{
		repo:    repo,
		grading: grading,
		logger:  logger,
	}
}

func (s *commentService) Post(ctx context.Context, userID, articleID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrCommentEmpty
	}

	if _, err := s.repo.Article().GetByID(ctx, articleID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	passed, err := s.grading.HasPassed(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}
	if !passed {
		return nil, ErrQuizNotPassed
	}

	comment := &models.Comment{
		Content:    content,
		UserID:     userID,
		ArticleID:  articleID,
		DatePosted: time.Now().UTC(),
	}
	if err := s.repo.Comment().Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.InfoContext(ctx, "comment posted", "user_id", userID, "article_id", articleID, "comment_id", comment.ID)
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrCommentEmpty
	}

	comment, err := s.repo.Comment().GetByID(ctx, commentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.UserID != userID {
		return nil, ErrNotCommentAuthor
	}

	comment.Content = content
	comment.DatePosted = time.Now().UTC()
	if err := s.repo.Comment().Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, userID, commentID uint) error {
	comment, err := s.repo.Comment().GetByID(ctx, commentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.UserID != userID {
		return ErrNotCommentAuthor
	}
	return s.repo.Comment().Delete(ctx, commentID)
}

func (s *commentService) ListByArticle(ctx context.Context, articleID uint) ([]*models.Comment, error) {
	return s.repo.Comment().GetByArticle(ctx, articleID)
}
