package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
)

// GeneratorConfig controls the retry envelope around the external service.
type GeneratorConfig struct {
	// Retries is the total number of attempts (default 3).
	Retries int
	// Delay is the fixed wait between attempts (default 5s).
	Delay time.Duration
	// Timeout bounds a single attempt. A timed-out attempt is retryable.
	Timeout time.Duration
}

// DefaultGeneratorConfig returns the retry policy carried over from the
// original deployment.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Retries: 3,
		Delay:   5 * time.Second,
		Timeout: 60 * time.Second,
	}
}

// Generator produces a validated question set for an article's content.
// Each attempt is independent: build prompt, call the service, clean the
// output, validate. A malformed response on attempt N triggers a fresh
// attempt N+1 within the same retry budget.
type Generator struct {
	chat   ChatClient
	config GeneratorConfig
	logger utils.Logger
}

func NewGenerator(chat ChatClient, config GeneratorConfig, logger utils.Logger) *Generator {
	if config.Retries <= 0 {
		config.Retries = DefaultGeneratorConfig().Retries
	}
	if config.Delay <= 0 {
		config.Delay = DefaultGeneratorConfig().Delay
	}
	return &Generator{
		chat:   chat,
		config: config,
		logger: logger,
	}
}

// Generate runs the prompt → completion → validation pipeline with retries.
// It returns ErrGenerationFailed (wrapping the last attempt's error) once the
// budget is exhausted. Nothing is persisted here. The inter-attempt delay
// holds no resources and honors context cancellation.
func (g *Generator) Generate(ctx context.Context, content string) ([]models.Question, error) {
	prompt := BuildQuizPrompt(content)

	var lastErr error
	for attempt := 1; attempt <= g.config.Retries; attempt++ {
		questions, err := g.attempt(ctx, prompt)
		if err == nil {
			return questions, nil
		}
		lastErr = err

		// Context errors are terminal, not transient.
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, err
		}

		g.logger.Warn("quiz generation attempt failed",
			"attempt", attempt,
			"retries", g.config.Retries,
			"error", err)

		if attempt == g.config.Retries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.config.Delay):
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, g.config.Retries, lastErr)
}

func (g *Generator) attempt(ctx context.Context, prompt string) ([]models.Question, error) {
	attemptCtx := ctx
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	raw, err := g.chat.Complete(attemptCtx, SystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	text := CleanQuizText(raw)

	questions, err := ParseQuestions(text)
	if err != nil {
		// Keep the offending text in the log so operators can see what the
		// model actually returned.
		g.logger.Error("generated quiz failed validation", "error", err, "raw_text", text)
		return nil, err
	}

	return questions, nil
}
