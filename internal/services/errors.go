package services

import (
	"errors"

	"github.com/newswire-apps/newsquiz-service/internal/generation"
)

var (
	// Generic errors
	ErrNotFound      = errors.New("resource not found")
	ErrForbidden     = errors.New("forbidden - insufficient permissions")
	ErrInternalError = errors.New("internal server error")

	// Article errors
	ErrArticleNotFound = errors.New("article not found")

	// Identity errors
	ErrUserNotFound = errors.New("user not found")

	// Quiz lifecycle errors
	ErrQuizNotFound        = errors.New("quiz not found for this article")
	ErrMalformedStoredQuiz = errors.New("stored quiz payload is corrupted")

	// Commenting errors
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCommentEmpty     = errors.New("comment cannot be empty")
	ErrQuizNotPassed    = errors.New("quiz must be passed before commenting")
	ErrNotCommentAuthor = errors.New("comment belongs to another user")
)

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrArticleNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrQuizNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}

// IsGenerationFailure checks if error means quiz generation did not produce a
// usable quiz. Malformed model output counts: the user-visible outcome is the
// same "quiz unavailable" either way.
func IsGenerationFailure(err error) bool {
	return errors.Is(err, generation.ErrGenerationFailed) ||
		errors.Is(err, generation.ErrMalformedOutput)
}

// IsForbidden checks if error represents a permission failure
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrQuizNotPassed) ||
		errors.Is(err, ErrNotCommentAuthor)
}
