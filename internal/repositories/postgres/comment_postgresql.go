package postgres

import (
	"context"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"gorm.io/gorm"
)

type CommentPostgreSQL struct {
	db *gorm.DB
}

func NewCommentPostgreSQL(db *gorm.DB) *CommentPostgreSQL {
	return &CommentPostgreSQL{db: db}
}

func (c *CommentPostgreSQL) Create(ctx context.Context, comment *models.Comment) error {
	return c.db.WithContext(ctx).Create(comment).Error
}

func (c *CommentPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := c.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *CommentPostgreSQL) GetByArticle(ctx context.Context, articleID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := c.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("date_posted ASC").
		Preload("Author").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *CommentPostgreSQL) Update(ctx context.Context, comment *models.Comment) error {
	return c.db.WithContext(ctx).Save(comment).Error
}

func (c *CommentPostgreSQL) Delete(ctx context.Context, id uint) error {
	return c.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}
