package repositories

import (
	"context"
	"errors"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateQuiz is returned by QuizRepository.Create when the article
// already has a quiz. Callers recover by re-fetching the existing quiz.
var ErrDuplicateQuiz = errors.New("quiz already exists for article")

// ArticleRepository provides access to ingested articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetByTitle(ctx context.Context, title string) (*models.Article, error)
	List(ctx context.Context, page, perPage int) ([]*models.Article, int64, error)
}

// QuizRepository enforces the at-most-one-quiz-per-article invariant through
// the unique index on article_id.
type QuizRepository interface {
	// Create inserts the quiz; a losing racer gets ErrDuplicateQuiz.
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByID(ctx context.Context, id uint) (*models.Quiz, error)
	// GetByArticle returns (nil, nil) when the article has no quiz yet.
	GetByArticle(ctx context.Context, articleID uint) (*models.Quiz, error)
}

// AttemptRepository stores per-user, per-quiz attempt state.
type AttemptRepository interface {
	// Get returns (nil, nil) when the user has not submitted for this quiz.
	Get(ctx context.Context, userID, quizID uint) (*models.UserQuiz, error)
	// Upsert creates the (user, quiz) record or overwrites its grading fields
	// in place. Last submission wins.
	Upsert(ctx context.Context, record *models.UserQuiz) error
	// GetByQuiz returns all attempt records for a quiz, newest first.
	GetByQuiz(ctx context.Context, quizID uint) ([]*models.UserQuiz, error)
	// HasPassed reports whether a passed record exists for the pair.
	HasPassed(ctx context.Context, userID, quizID uint) (bool, error)
}

// CommentRepository stores article comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	GetByArticle(ctx context.Context, articleID uint) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

// UserRepository provides the minimal identity lookups the service needs.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// Repository aggregates all repositories behind one dependency.
type Repository interface {
	Article() ArticleRepository
	Quiz() QuizRepository
	Attempt() AttemptRepository
	Comment() CommentRepository
	User() UserRepository

	// WithTx runs fn inside one database transaction; any error rolls the
	// whole transaction back.
	WithTx(ctx context.Context, fn func(repo Repository) error) error
}

// IsNotFoundError reports whether err is the storage layer's record-missing
// condition.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
