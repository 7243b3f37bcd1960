package assist

import (
	"context"
	"errors"
	"sync"
)

// ErrAssistInProgress is returned when Spark is called while another Spark of the same draft is running.
var ErrAssistInProgress = errors.New("assist is already in progress")

const (
	improveThreshold = 10
	defaultTopic     = "a beautiful day"
)

// Draft is the text being composed. Every change bumps the revision,
// an assist result is applied only when the revision did not move while the model was working.
type Draft struct {
	a *Assistant

	mu   sync.Mutex
	text string
	rev  uint64
	busy bool
}

// NewDraft ...
func NewDraft(a *Assistant) *Draft {
	return &Draft{a: a}
}

// Text ...
func (d *Draft) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.text
}

// Busy reports whether Spark is running.
func (d *Draft) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.busy
}

// Set replaces the text.
func (d *Draft) Set(text string) {
	d.mu.Lock()
	d.text = text
	d.rev++
	d.mu.Unlock()
}

// Clear ...
func (d *Draft) Clear() {
	d.Set("")
}

// Spark improves the text when it is longer than 10 characters, otherwise generates a post using it as topic.
// applied is false when the draft changed during the call; then the result is dropped and the current text returned.
func (d *Draft) Spark(ctx context.Context) (text string, applied bool, err error) {
	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return "", false, ErrAssistInProgress
	}
	d.busy = true
	rev, input := d.rev, d.text
	d.mu.Unlock()

	var out string
	if len([]rune(input)) > improveThreshold {
		out = d.a.Improve(ctx, input)
	} else {
		topic := input
		if topic == "" {
			topic = defaultTopic
		}
		out = d.a.Generate(ctx, topic)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.busy = false

	if d.rev != rev {
		log.WithField("revision", rev).Debug("draft changed during assist, dropping result")
		return d.text, false, nil
	}

	d.text = out
	d.rev++

	return out, true, nil
}
