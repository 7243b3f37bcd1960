// Package assist suggests post text with a language model.
// Every failure degrades to fallback text, nothing here is fatal for the feed.
package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=./mock/model.go -package=mock -source=assist.go

var log = logrus.WithField("package", "assist")

// MissingKeyMessage is returned by Generate when no model is configured.
const MissingKeyMessage = "API Key missing. Please configure the environment."

// Model generates text for a prompt.
type Model interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Assistant wraps a Model with prompts and fallbacks. Nil model means the service is not configured.
type Assistant struct {
	m       Model
	timeout time.Duration
}

// New creates new instance of Assistant. Zero timeout means no timeout besides ctx.
func New(m Model, timeout time.Duration) *Assistant {
	return &Assistant{
		m:       m,
		timeout: timeout,
	}
}

// Configured ...
func (a *Assistant) Configured() bool {
	return a != nil && a.m != nil
}

// Generate writes a short post about topic. Returns MissingKeyMessage when unconfigured and empty string on failure.
func (a *Assistant) Generate(ctx context.Context, topic string) string {
	if !a.Configured() {
		log.Warn("model is not configured")
		return MissingKeyMessage
	}

	prompt := fmt.Sprintf(`Write a short, engaging social media post about "%s".
    Include 1-2 emojis. Keep it under 280 characters.
    Do not include hashtags unless absolutely necessary.`, topic)

	s, err := a.call(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("failed to generate content")
		return ""
	}

	return s
}

// Improve fixes grammar and tone of text. Returns text unchanged on failure.
func (a *Assistant) Improve(ctx context.Context, text string) string {
	if !a.Configured() {
		return text
	}

	prompt := fmt.Sprintf(`Fix the grammar and make this social media post sound more professional yet friendly: "%s". Return only the fixed text.`, text)

	s, err := a.call(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("failed to improve content")
		return text
	}

	if s = strings.TrimSpace(s); s == "" {
		return text
	}

	return s
}

func (a *Assistant) call(ctx context.Context, prompt string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	return a.m.GenerateText(ctx, prompt)
}
