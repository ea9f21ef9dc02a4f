package services

import (
	"context"
	"fmt"

	"github.com/newswire-apps/newsquiz-service/internal/events"
	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

// SubmissionResult is returned to the HTTP layer after grading a submission.
type SubmissionResult struct {
	Score    int                       `json:"score"`
	Total    int                       `json:"total"`
	Passed   bool                      `json:"passed"`
	Feedback []models.QuestionFeedback `json:"feedback"`
}

// GradingService grades submissions against stored quizzes and tracks
// per-user attempt state. It is also the commenting gate's source of truth.
type GradingService interface {
	// SubmitAnswers grades the responses against the article's stored quiz
	// and upserts the (user, quiz) attempt record. Last submission wins.
	SubmitAnswers(ctx context.Context, userID, articleID uint, responses map[string]string) (*SubmissionResult, error)

	// HasPassed reports whether the user has a passed attempt for the
	// article's quiz. False when no quiz exists.
	HasPassed(ctx context.Context, userID, articleID uint) (bool, error)

	// HasAttempted reports whether the user has submitted at all.
	HasAttempted(ctx context.Context, userID, articleID uint) (bool, error)

	// GetAttempt returns the user's saved attempt record for the article's
	// quiz, or nil when none exists.
	GetAttempt(ctx context.Context, userID, articleID uint) (*models.UserQuiz, error)
}

type gradingService struct {
	repo         repositories.Repository
	publisher    events.EventPublisher
	logger       utils.Logger
	passingScore int
}

func NewGradingService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger utils.Logger,
	passingScore int,
) GradingService {
	if passingScore <= 0 {
		// Carried over from the original deployment: a perfect score is
		// required, the threshold equals the question count.
		passingScore = models.QuestionCount
	}
	return &gradingService{
		repo:         repo,
		publisher:    publisher,
		logger:       logger,
		passingScore: passingScore,
	}
}

func (s *gradingService) SubmitAnswers(ctx context.Context, userID, articleID uint, responses map[string]string) (*SubmissionResult, error) {
	// The auth service owns the users table; an identity header naming a row
	// that does not exist is rejected before anything is written.
	if _, err := s.repo.User().GetByID(ctx, userID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	quiz, err := s.repo.Quiz().GetByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quiz: %w", err)
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	questions, err := models.UnmarshalQuestions(quiz.Questions)
	if err != nil {
		// Stored-data corruption, distinct from a missing quiz.
		s.logger.ErrorContext(ctx, "stored quiz payload failed to deserialize",
			"quiz_id", quiz.ID,
			"article_id", articleID,
			"error", err)
		return nil, ErrMalformedStoredQuiz
	}

	grade := Grade(questions, responses)
	passed := grade.Score >= s.passingScore

	feedbackJSON, err := models.MarshalFeedback(grade.Feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize feedback: %w", err)
	}

	score := grade.Score
	record := &models.UserQuiz{
		UserID:    userID,
		QuizID:    quiz.ID,
		Attempted: true,
		Passed:    passed,
		Score:     &score,
		Feedback:  feedbackJSON,
	}

	if err := s.repo.Attempt().Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	s.logger.InfoContext(ctx, "quiz submission graded",
		"user_id", userID,
		"quiz_id", quiz.ID,
		"score", grade.Score,
		"total", grade.Total,
		"passed", passed)

	if err := s.publisher.PublishQuizEvent(ctx, events.NewAttemptSubmittedEvent(userID, quiz.ID, grade.Score, grade.Total, passed)); err != nil {
		s.logger.Warn("failed to publish attempt.submitted event", "quiz_id", quiz.ID, "error", err)
	}

	return &SubmissionResult{
		Score:    grade.Score,
		Total:    grade.Total,
		Passed:   passed,
		Feedback: grade.Feedback,
	}, nil
}

func (s *gradingService) HasPassed(ctx context.Context, userID, articleID uint) (bool, error) {
	quiz, err := s.repo.Quiz().GetByArticle(ctx, articleID)
	if err != nil {
		return false, fmt.Errorf("failed to look up quiz: %w", err)
	}
	if quiz == nil {
		return false, nil
	}
	return s.repo.Attempt().HasPassed(ctx, userID, quiz.ID)
}

func (s *gradingService) HasAttempted(ctx context.Context, userID, articleID uint) (bool, error) {
	record, err := s.GetAttempt(ctx, userID, articleID)
	if err != nil {
		return false, err
	}
	return record != nil && record.Attempted, nil
}

func (s *gradingService) GetAttempt(ctx context.Context, userID, articleID uint) (*models.UserQuiz, error) {
	quiz, err := s.repo.Quiz().GetByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quiz: %w", err)
	}
	if quiz == nil {
		return nil, nil
	}
	return s.repo.Attempt().Get(ctx, userID, quiz.ID)
}
