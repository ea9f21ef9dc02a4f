package generation

import (
	"fmt"

	"github.com/newswire-apps/newsquiz-service/internal/models"
)

// SystemPrompt sets the generator's role for every quiz request.
const SystemPrompt = "You are an AI that generates quiz questions."

const promptTemplate = `Read the following article and generate a %d-question multiple-choice quiz to test the reader's understanding of the content. Each question must have exactly %d distinct options, with one correct answer and three plausible distractors. The correct answer must match one of the options exactly and must not always be the first option. Respond with a bare JSON array only: no markdown, no code fencing, no surrounding prose.

Format:
[
    {
        "question": "Question text",
        "options": ["A", "B", "C", "D"],
        "correct_answer": "A"
    },
    ...
]

Article:
%s`

// BuildQuizPrompt builds the instruction payload for one article. It is a
// pure function: empty or very long content is passed through untouched,
// truncation is the caller's concern.
func BuildQuizPrompt(content string) string {
	return fmt.Sprintf(promptTemplate, models.QuestionCount, models.OptionCount, content)
}
