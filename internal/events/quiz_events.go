package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// QuizGenerated fires after a new quiz row is committed for an article.
	QuizGenerated EventType = "quiz.generated"
	// AttemptSubmitted fires after a grading result is persisted.
	AttemptSubmitted EventType = "attempt.submitted"
)

// QuizEvent is the envelope published to the event stream for downstream
// consumers (notification service, editorial analytics).
type QuizEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Source    string         `json:"source"`
	Version   string         `json:"version"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

// NewQuizGeneratedEvent builds the event for a freshly created quiz.
func NewQuizGeneratedEvent(articleID, quizID uint) *QuizEvent {
	return newEvent(QuizGenerated, map[string]any{
		"article_id": articleID,
		"quiz_id":    quizID,
	})
}

// NewAttemptSubmittedEvent builds the event for a persisted grading result.
func NewAttemptSubmittedEvent(userID, quizID uint, score, total int, passed bool) *QuizEvent {
	return newEvent(AttemptSubmitted, map[string]any{
		"user_id": userID,
		"quiz_id": quizID,
		"score":   score,
		"total":   total,
		"passed":  passed,
	})
}

func newEvent(eventType EventType, payload map[string]any) *QuizEvent {
	return &QuizEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    "newsquiz-service",
		Version:   "1.0",
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
