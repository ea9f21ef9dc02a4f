package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// UserQuiz records one user's state against one quiz. The (user_id, quiz_id)
// pair is unique: the first submission creates the row, later submissions
// overwrite it in place. No attempt history is kept.
type UserQuiz struct {
	UserID    uint           `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	QuizID    uint           `json:"quiz_id" gorm:"primaryKey;autoIncrement:false"`
	Attempted bool           `json:"attempted" gorm:"not null;default:false"`
	Passed    bool           `json:"passed" gorm:"not null;default:false"`
	Score     *int           `json:"score"`
	Feedback  datatypes.JSON `json:"feedback" gorm:"type:jsonb"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (UserQuiz) TableName() string {
	return "user_quizzes"
}

// QuestionFeedback is one per-question grading result, stored in order inside
// the attempt's feedback jsonb column. YourAnswer is null when the user gave
// no answer for the question.
type QuestionFeedback struct {
	Question      string  `json:"question"`
	YourAnswer    *string `json:"your_answer"`
	CorrectAnswer string  `json:"correct_answer"`
	IsCorrect     bool    `json:"is_correct"`
}

// MarshalFeedback serializes grading feedback into the stored jsonb shape.
func MarshalFeedback(feedback []QuestionFeedback) (datatypes.JSON, error) {
	data, err := json.Marshal(feedback)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

// UnmarshalFeedback deserializes stored grading feedback.
func UnmarshalFeedback(data datatypes.JSON) ([]QuestionFeedback, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var feedback []QuestionFeedback
	if err := json.Unmarshal(data, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
