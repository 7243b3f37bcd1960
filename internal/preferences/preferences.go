// Package preferences keeps the theme preference.
package preferences

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/storage"
)

var log = logrus.WithField("package", "preferences")

// Theme is the stored theme with a fallback for the first run.
type Theme struct {
	s storage.Storage

	mu sync.Mutex
	v  entities.Theme
}

// NewTheme creates new instance of Theme. Call Load to read the stored value.
func NewTheme(s storage.Storage, fallback entities.Theme) *Theme {
	if fallback != entities.ThemeDark {
		fallback = entities.ThemeLight
	}

	return &Theme{
		s: s,
		v: fallback,
	}
}

// Load reads the stored theme. Absent or unknown value keeps the fallback.
func (t *Theme) Load(ctx context.Context) entities.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, err := t.s.Load(ctx, entities.ThemeKey)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		return t.v
	default:
		log.WithError(err).Error("failed to load theme")
		return t.v
	}

	switch th := entities.Theme(v); th {
	case entities.ThemeDark, entities.ThemeLight:
		t.v = th
	default:
		log.WithField("value", v).Warn("unknown theme stored")
	}

	return t.v
}

// Get ...
func (t *Theme) Get() entities.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.v
}

// Toggle switches between dark and light and persists the choice.
func (t *Theme) Toggle(ctx context.Context) entities.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.v == entities.ThemeDark {
		t.v = entities.ThemeLight
	} else {
		t.v = entities.ThemeDark
	}

	if err := t.s.Save(ctx, entities.ThemeKey, string(t.v)); err != nil {
		log.WithError(err).Error("failed to persist theme")
	}

	return t.v
}
