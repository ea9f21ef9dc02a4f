package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"gorm.io/gorm"
)

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) *QuizPostgreSQL {
	return &QuizPostgreSQL{db: db}
}

// Create inserts the quiz row. The unique index on article_id arbitrates
// concurrent creators; the loser sees ErrDuplicateQuiz and should re-fetch.
// Requires gorm's TranslateError so the driver's duplicate-key error maps to
// gorm.ErrDuplicatedKey.
func (q *QuizPostgreSQL) Create(ctx context.Context, quiz *models.Quiz) error {
	if err := q.db.WithContext(ctx).Create(quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: article %d", repositories.ErrDuplicateQuiz, quiz.ArticleID)
		}
		return err
	}
	return nil
}

func (q *QuizPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := q.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (q *QuizPostgreSQL) GetByArticle(ctx context.Context, articleID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := q.db.WithContext(ctx).Where("article_id = ?", articleID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}
