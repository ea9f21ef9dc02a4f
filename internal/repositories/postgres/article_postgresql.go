package postgres

import (
	"context"
	"errors"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"gorm.io/gorm"
)

type ArticlePostgreSQL struct {
	db *gorm.DB
}

func NewArticlePostgreSQL(db *gorm.DB) *ArticlePostgreSQL {
	return &ArticlePostgreSQL{db: db}
}

func (a *ArticlePostgreSQL) Create(ctx context.Context, article *models.Article) error {
	return a.db.WithContext(ctx).Create(article).Error
}

func (a *ArticlePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := a.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (a *ArticlePostgreSQL) GetByTitle(ctx context.Context, title string) (*models.Article, error) {
	var article models.Article
	if err := a.db.WithContext(ctx).Where("title = ?", title).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (a *ArticlePostgreSQL) List(ctx context.Context, page, perPage int) ([]*models.Article, int64, error) {
	var articles []*models.Article
	var total int64

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	query := a.db.WithContext(ctx).Model(&models.Article{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("date_posted DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}
