package postgres

import (
	"context"

	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"gorm.io/gorm"
)

// Repository is the gorm-backed aggregate. All concrete repositories share
// one *gorm.DB so WithTx can hand out a transactional view.
type Repository struct {
	db      *gorm.DB
	article *ArticlePostgreSQL
	quiz    *QuizPostgreSQL
	attempt *AttemptPostgreSQL
	comment *CommentPostgreSQL
	user    *UserPostgreSQL
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &Repository{
		db:      db,
		article: NewArticlePostgreSQL(db),
		quiz:    NewQuizPostgreSQL(db),
		attempt: NewAttemptPostgreSQL(db),
		comment: NewCommentPostgreSQL(db),
		user:    NewUserPostgreSQL(db),
	}
}

func (r *Repository) Article() repositories.ArticleRepository { return r.article }
func (r *Repository) Quiz() repositories.QuizRepository       { return r.quiz }
func (r *Repository) Attempt() repositories.AttemptRepository { return r.attempt }
func (r *Repository) Comment() repositories.CommentRepository { return r.comment }
func (r *Repository) User() repositories.UserRepository       { return r.user }

func (r *Repository) WithTx(ctx context.Context, fn func(repo repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
