// Package generator turns retrieved context and a question into a
// natural-language answer.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Generator produces an answer for a query given retrieved context
// sentences, nearest first.
type Generator interface {
	Name() string
	Generate(ctx context.Context, query string, contextSentences []string) (string, error)
}

// Prompt builds the prompt fed to generative models: the context block
// joined with single spaces, then the question.
func Prompt(query string, contextSentences []string) string {
	return fmt.Sprintf("Context: %s \n\nQuestion: %s", strings.Join(contextSentences, " "), query)
}

// Extractive answers with the top retrieved sentences verbatim. It is the
// offline default; switching to a hosted model is a config change.
type Extractive struct {
	maxSentences int
}

// NewExtractive creates the extractive generator returning at most
// maxSentences context sentences as the answer.
func NewExtractive(maxSentences int) *Extractive {
	if maxSentences <= 0 {
		maxSentences = 2
	}
	return &Extractive{maxSentences: maxSentences}
}

func (g *Extractive) Name() string { return "extractive" }

// Generate joins the nearest sentences into the answer.
func (g *Extractive) Generate(_ context.Context, _ string, contextSentences []string) (string, error) {
	if len(contextSentences) == 0 {
		return "", errors.New("no context to answer from")
	}
	n := g.maxSentences
	if n > len(contextSentences) {
		n = len(contextSentences)
	}
	return strings.Join(contextSentences[:n], " "), nil
}
