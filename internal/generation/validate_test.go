package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuizJSON = `[
	{"question": "Q1?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
	{"question": "Q2?", "options": ["A2", "B2", "C2", "D2"], "correct_answer": "B2"},
	{"question": "Q3?", "options": ["A3", "B3", "C3", "D3"], "correct_answer": "C3"},
	{"question": "Q4?", "options": ["A4", "B4", "C4", "D4"], "correct_answer": "D4"},
	{"question": "Q5?", "options": ["A5", "B5", "C5", "D5"], "correct_answer": "A5"}
]`

func TestCleanQuizText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    `[{"question": "Q?"}]`,
			expected: `[{"question": "Q?"}]`,
		},
		{
			name:     "strips fencing",
			input:    "```json\n[1, 2]\n```",
			expected: "[1, 2]",
		},
		{
			name:     "strips bare fencing",
			input:    "```\n[1, 2]\n```",
			expected: "[1, 2]",
		},
		{
			name:     "trims whitespace",
			input:    "  [1, 2]  \n",
			expected: "[1, 2]",
		},
		{
			name:     "two-line fence left alone",
			input:    "```\n```",
			expected: "```\n```",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanQuizText(tt.input))
		})
	}
}

func TestCleanQuizText_FencedEqualsUnfenced(t *testing.T) {
	fenced := "```json\n" + validQuizJSON + "\n```"

	fromFenced, err := ParseQuestions(CleanQuizText(fenced))
	require.NoError(t, err)
	fromPlain, err := ParseQuestions(CleanQuizText(validQuizJSON))
	require.NoError(t, err)

	assert.Equal(t, fromPlain, fromFenced)
}

func TestParseQuestions_Valid(t *testing.T) {
	questions, err := ParseQuestions(validQuizJSON)
	require.NoError(t, err)
	require.Len(t, questions, 5)

	assert.Equal(t, "Q1?", questions[0].Question)
	assert.Equal(t, []string{"A", "B", "C", "D"}, questions[0].Options)
	assert.Equal(t, "A", questions[0].CorrectAnswer)

	for i, q := range questions {
		assert.Lenf(t, q.Options, 4, "question %d option count", i)
		assert.Truef(t, q.HasCorrectOption(), "question %d correct answer membership", i)
	}
}

func TestParseQuestions_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "this is not json"},
		{"not an array", `{"question": "Q?"}`},
		{
			"missing question field",
			`[{"options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q2?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q3?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q4?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q5?", "options": ["A", "B", "C", "D"], "correct_answer": "A"}]`,
		},
		{
			"three options",
			`[{"question": "Q1?", "options": ["A", "B", "C"], "correct_answer": "A"},
			  {"question": "Q2?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q3?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q4?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q5?", "options": ["A", "B", "C", "D"], "correct_answer": "A"}]`,
		},
		{
			"duplicate options",
			`[{"question": "Q1?", "options": ["A", "A", "C", "D"], "correct_answer": "A"},
			  {"question": "Q2?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q3?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q4?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q5?", "options": ["A", "B", "C", "D"], "correct_answer": "A"}]`,
		},
		{
			"correct answer not an option",
			`[{"question": "Q1?", "options": ["A", "B", "C", "D"], "correct_answer": "E"},
			  {"question": "Q2?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q3?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q4?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q5?", "options": ["A", "B", "C", "D"], "correct_answer": "A"}]`,
		},
		{"empty array", `[]`},
		{
			"four questions",
			`[{"question": "Q1?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q2?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q3?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
			  {"question": "Q4?", "options": ["A", "B", "C", "D"], "correct_answer": "A"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestions(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedOutput), "expected ErrMalformedOutput, got %v", err)
		})
	}
}

func TestParseQuestions_CaseSensitiveMembership(t *testing.T) {
	// "a" is not "A": membership is byte-for-byte.
	input := fmt.Sprintf(`[
		{"question": "Q1?", "options": ["A", "B", "C", "D"], "correct_answer": "a"},
		%s]`, `{"question": "Q2?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
		{"question": "Q3?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
		{"question": "Q4?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
		{"question": "Q5?", "options": ["A", "B", "C", "D"], "correct_answer": "A"}`)

	_, err := ParseQuestions(input)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}
