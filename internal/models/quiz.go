package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// QuestionCount is the number of questions every generated quiz carries.
const QuestionCount = 5

// OptionCount is the number of answer options on every question.
const OptionCount = 4

// Quiz holds the generated question set for one article. The unique index on
// article_id is the generate-once guarantee: concurrent creators race and the
// database rejects the second insert.
type Quiz struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ArticleID uint           `json:"article_id" gorm:"not null;uniqueIndex"`
	Questions datatypes.JSON `json:"questions" gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question is the embedded quiz payload element. It is stored as part of the
// quiz jsonb column, never as its own row.
type Question struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,len=4,unique"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

// HasCorrectOption reports whether the correct answer equals one of the
// options byte-for-byte.
func (q Question) HasCorrectOption() bool {
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return true
		}
	}
	return false
}

// MarshalQuestions serializes a question set into the stored jsonb shape:
// a JSON array of {question, options, correct_answer} objects.
func MarshalQuestions(questions []Question) (datatypes.JSON, error) {
	data, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

// UnmarshalQuestions deserializes the stored question payload.
func UnmarshalQuestions(data datatypes.JSON) ([]Question, error) {
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
