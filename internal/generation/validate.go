package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/newswire-apps/newsquiz-service/internal/models"
)

var validate = validator.New()

// CleanQuizText strips one layer of code fencing from model output. When the
// text both starts and ends with a fence marker, the first and last lines are
// dropped; anything else is returned trimmed but otherwise untouched.
func CleanQuizText(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) >= 3 {
			text = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	return strings.TrimSpace(text)
}

// rawQuestion mirrors the expected wire shape with pointer fields so missing
// keys are distinguishable from empty values.
type rawQuestion struct {
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *string   `json:"correct_answer"`
}

// ParseQuestions turns cleaned model output into a validated question set.
// Every failure is ErrMalformedOutput: unparseable JSON, a non-array top
// level, a missing field, the wrong option count, a duplicate option, a
// correct answer that is not one of the options, or the wrong question count.
func ParseQuestions(text string) ([]models.Question, error) {
	var raw []rawQuestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if len(raw) != models.QuestionCount {
		return nil, fmt.Errorf("%w: expected %d questions, got %d", ErrMalformedOutput, models.QuestionCount, len(raw))
	}

	questions := make([]models.Question, 0, len(raw))
	for i, rq := range raw {
		if rq.Question == nil || rq.Options == nil || rq.CorrectAnswer == nil {
			return nil, fmt.Errorf("%w: question %d is missing a required field", ErrMalformedOutput, i)
		}

		q := models.Question{
			Question:      *rq.Question,
			Options:       *rq.Options,
			CorrectAnswer: *rq.CorrectAnswer,
		}

		// Struct tags enforce the 4-option count, option distinctness and
		// non-empty fields.
		if err := validate.Struct(q); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrMalformedOutput, i, err)
		}

		if !q.HasCorrectOption() {
			return nil, fmt.Errorf("%w: question %d: correct answer is not one of the options", ErrMalformedOutput, i)
		}

		questions = append(questions, q)
	}

	return questions, nil
}
