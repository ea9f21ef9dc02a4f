package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
	"github.com/stretchr/testify/mock"
)

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// MockArticleRepository is a mock implementation of repositories.ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) GetByTitle(ctx context.Context, title string) (*models.Article, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context, page, perPage int) ([]*models.Article, int64, error) {
	args := m.Called(ctx, page, perPage)
	return args.Get(0).([]*models.Article), args.Get(1).(int64), args.Error(2)
}

// MockQuizRepository is a mock implementation of repositories.QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id uint) (*models.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetByArticle(ctx context.Context, articleID uint) (*models.Quiz, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

// MockAttemptRepository is a mock implementation of repositories.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Get(ctx context.Context, userID, quizID uint) (*models.UserQuiz, error) {
	args := m.Called(ctx, userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserQuiz), args.Error(1)
}

func (m *MockAttemptRepository) Upsert(ctx context.Context, record *models.UserQuiz) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetByQuiz(ctx context.Context, quizID uint) ([]*models.UserQuiz, error) {
	args := m.Called(ctx, quizID)
	return args.Get(0).([]*models.UserQuiz), args.Error(1)
}

func (m *MockAttemptRepository) HasPassed(ctx context.Context, userID, quizID uint) (bool, error) {
	args := m.Called(ctx, userID, quizID)
	return args.Bool(0), args.Error(1)
}

// MockCommentRepository is a mock implementation of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByArticle(ctx context.Context, articleID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// mockRepository aggregates the mocks behind repositories.Repository
type mockRepository struct {
	article *MockArticleRepository
	quiz    *MockQuizRepository
	attempt *MockAttemptRepository
	comment *MockCommentRepository
	user    *MockUserRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		article: new(MockArticleRepository),
		quiz:    new(MockQuizRepository),
		attempt: new(MockAttemptRepository),
		comment: new(MockCommentRepository),
		user:    new(MockUserRepository),
	}
}

func (r *mockRepository) Article() repositories.ArticleRepository { return r.article }
func (r *mockRepository) Quiz() repositories.QuizRepository       { return r.quiz }
func (r *mockRepository) Attempt() repositories.AttemptRepository { return r.attempt }
func (r *mockRepository) Comment() repositories.CommentRepository { return r.comment }
func (r *mockRepository) User() repositories.UserRepository       { return r.user }

func (r *mockRepository) WithTx(ctx context.Context, fn func(repo repositories.Repository) error) error {
	return fn(r)
}

// mockGenerator is a scripted QuizGenerator
type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, content string) ([]models.Question, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

// fiveQuestions returns a well-formed question set where every correct
// answer sits at option index 0.
func fiveQuestions() []models.Question {
	questions := make([]models.Question, 0, models.QuestionCount)
	for i := 0; i < models.QuestionCount; i++ {
		questions = append(questions, models.Question{
			Question:      "Question " + string(rune('1'+i)) + "?",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
		})
	}
	return questions
}

// allCorrectResponses answers every question with its correct option.
func allCorrectResponses(questions []models.Question) map[string]string {
	responses := make(map[string]string, len(questions))
	for i, q := range questions {
		responses[ResponseKey(i)] = q.CorrectAnswer
	}
	return responses
}
