package services

import (
	"context"
	"errors"
	"testing"

	"github.com/newswire-apps/newsquiz-service/internal/cache"
	"github.com/newswire-apps/newsquiz-service/internal/events"
	"github.com/newswire-apps/newsquiz-service/internal/generation"
	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuizServiceFixture(t *testing.T) (*mockRepository, *mockGenerator, QuizService) {
	t.Helper()
	repo := newMockRepository()
	generator := new(mockGenerator)
	svc := NewQuizService(repo, generator, cache.NoopCache{}, events.NewMockEventPublisher(), testLogger())
	return repo, generator, svc
}

func storedQuiz(t *testing.T, articleID uint) *models.Quiz {
	t.Helper()
	payload, err := models.MarshalQuestions(fiveQuestions())
	require.NoError(t, err)
	return &models.Quiz{ID: 7, ArticleID: articleID, Questions: payload}
}

func TestEnsureQuiz_GeneratesOnFirstAccess(t *testing.T) {
	repo, generator, svc := newQuizServiceFixture(t)

	article := &models.Article{ID: 1, Title: "Rate hike", Content: "The central bank raised rates."}
	repo.quiz.On("GetByArticle", mock.Anything, uint(1)).Return(nil, nil)
	repo.article.On("GetByID", mock.Anything, uint(1)).Return(article, nil)
	generator.On("Generate", mock.Anything, article.Content).Return(fiveQuestions(), nil)
	repo.quiz.On("Create", mock.Anything, mock.AnythingOfType("*models.Quiz")).Return(nil)

	quiz, err := svc.EnsureQuiz(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, uint(1), quiz.ArticleID)

	questions, err := models.UnmarshalQuestions(quiz.Questions)
	require.NoError(t, err)
	assert.Len(t, questions, models.QuestionCount)

	repo.quiz.AssertExpectations(t)
	generator.AssertExpectations(t)
}

func TestEnsureQuiz_ExistingQuizNeverRegenerated(t *testing.T) {
	repo, generator, svc := newQuizServiceFixture(t)

	existing := storedQuiz(t, 1)
	repo.quiz.On("GetByArticle", mock.Anything, uint(1)).Return(existing, nil)

	quiz, err := svc.EnsureQuiz(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, existing, quiz)

	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	repo.quiz.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureQuiz_ArticleNotFound(t *testing.T) {
	repo, generator, svc := newQuizServiceFixture(t)

	repo.quiz.On("GetByArticle", mock.Anything, uint(99)).Return(nil, nil)
	repo.article.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.EnsureQuiz(context.Background(), 99)
	assert.ErrorIs(t, err, ErrArticleNotFound)
	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestEnsureQuiz_GenerationFailureLeavesNothingPersisted(t *testing.T) {
	repo, generator, svc := newQuizServiceFixture(t)

	article := &models.Article{ID: 1, Content: "text"}
	repo.quiz.On("GetByArticle", mock.Anything, uint(1)).Return(nil, nil)
	repo.article.On("GetByID", mock.Anything, uint(1)).Return(article, nil)
	genErr := errors.New("bad output after 3 attempts")
	generator.On("Generate", mock.Anything, "text").
		Return(nil, errors.Join(generation.ErrGenerationFailed, genErr))

	_, err := svc.EnsureQuiz(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsGenerationFailure(err))

	// Nothing was stored, so the next request generates again.
	repo.quiz.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureQuiz_DuplicateInsertReturnsWinner(t *testing.T) {
	repo, generator, svc := newQuizServiceFixture(t)

	article := &models.Article{ID: 1, Content: "text"}
	winner := storedQuiz(t, 1)

	// First lookup sees no quiz, a concurrent request wins the insert race,
	// and the re-fetch after the duplicate error returns the winner's row.
	repo.quiz.On("GetByArticle", mock.Anything, uint(1)).Return(nil, nil).Once()
	repo.article.On("GetByID", mock.Anything, uint(1)).Return(article, nil)
	generator.On("Generate", mock.Anything, "text").Return(fiveQuestions(), nil)
	repo.quiz.On("Create", mock.Anything, mock.AnythingOfType("*models.Quiz")).
		Return(repositories.ErrDuplicateQuiz)
	repo.quiz.On("GetByArticle", mock.Anything, uint(1)).Return(winner, nil).Once()

	quiz, err := svc.EnsureQuiz(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, winner, quiz)
	repo.quiz.AssertExpectations(t)
}

func TestGetQuiz_NotFound(t *testing.T) {
	repo, _, svc := newQuizServiceFixture(t)

	repo.quiz.On("GetByArticle", mock.Anything, uint(5)).Return(nil, nil)

	_, err := svc.GetQuiz(context.Background(), 5)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestGetQuiz_ReturnsStoredQuiz(t *testing.T) {
	repo, generator, svc := newQuizServiceFixture(t)

	existing := storedQuiz(t, 5)
	repo.quiz.On("GetByArticle", mock.Anything, uint(5)).Return(existing, nil)

	quiz, err := svc.GetQuiz(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, existing, quiz)
	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}
