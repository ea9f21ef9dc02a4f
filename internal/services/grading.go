package services

import (
	"fmt"

	"github.com/newswire-apps/newsquiz-service/internal/models"
)

// GradeResult is the outcome of scoring one answer set against one quiz.
type GradeResult struct {
	Score    int                       `json:"score"`
	Total    int                       `json:"total"`
	Feedback []models.QuestionFeedback `json:"feedback"`
}

// ResponseKey returns the submission map key for the question at the given
// array position: question_0, question_1, ...
func ResponseKey(index int) string {
	return fmt.Sprintf("question_%d", index)
}

// Grade scores a response map against an ordered question set. It is pure and
// deterministic: answers are compared to the correct answer with exact,
// case-sensitive string equality, a missing answer counts as incorrect, and
// the feedback sequence parallels the questions in order.
func Grade(questions []models.Question, responses map[string]string) GradeResult {
	result := GradeResult{
		Total:    len(questions),
		Feedback: make([]models.QuestionFeedback, 0, len(questions)),
	}

	for i, question := range questions {
		var userAnswer *string
		if answer, ok := responses[ResponseKey(i)]; ok {
			userAnswer = &answer
		}

		isCorrect := userAnswer != nil && *userAnswer == question.CorrectAnswer
		if isCorrect {
			result.Score++
		}

		result.Feedback = append(result.Feedback, models.QuestionFeedback{
			Question:      question.Question,
			YourAnswer:    userAnswer,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     isCorrect,
		})
	}

	return result
}
