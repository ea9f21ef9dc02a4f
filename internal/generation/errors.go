package generation

import "errors"

var (
	// ErrGenerationFailed means the text-generation service could not produce
	// a usable quiz within the retry budget. Nothing is persisted.
	ErrGenerationFailed = errors.New("quiz generation failed")

	// ErrMalformedOutput means the generated text did not match the quiz
	// schema. The raw text is logged for diagnosis.
	ErrMalformedOutput = errors.New("malformed quiz output")
)
