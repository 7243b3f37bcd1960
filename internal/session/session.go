// Package session holds the identity of the current user.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/storage"
)

var log = logrus.WithField("package", "session")

var (
	// ErrAlreadyLoggedIn ...
	ErrAlreadyLoggedIn = errors.New("already logged in")
	// ErrNotLoggedIn ...
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrMalformedUser is returned when a stored user record has no id.
	ErrMalformedUser = errors.New("malformed user record")
)

// State ...
type State string

const (
	// LoggedOut ...
	LoggedOut State = "logged_out"
	// LoggedIn ...
	LoggedIn State = "logged_in"
)

// Controller is a two-state machine: LoggedOut and LoggedIn(User).
// The logged in user is persisted and trusted on restore without re-authentication.
type Controller struct {
	s storage.Storage
	p AuthenticationProvider

	mu   sync.RWMutex
	user *entities.User
}

// New creates new instance of Controller in LoggedOut state.
func New(s storage.Storage, p AuthenticationProvider) *Controller {
	return &Controller{
		s: s,
		p: p,
	}
}

// Restore switches to LoggedIn when a valid user record is stored.
// Malformed record is removed.
func (c *Controller) Restore(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, err := c.s.Load(ctx, entities.UserKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.WithError(err).Error("failed to load user")
		}

		return c.state()
	}

	u, err := DecodeUser(v)
	if err != nil {
		log.WithError(err).Warn("stored user is malformed, removing")

		if err := c.s.Remove(ctx, entities.UserKey); err != nil {
			log.WithError(err).Error("failed to remove malformed user")
		}

		return c.state()
	}

	c.user = &u
	log.WithField("user", u.ID).Info("session restored")

	return c.state()
}

// Login authenticates credentials with the provider and persists the user.
func (c *Controller) Login(ctx context.Context, cred Credentials) (entities.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user != nil {
		return entities.User{}, ErrAlreadyLoggedIn
	}

	u, err := c.p.Authenticate(ctx, cred)
	if err != nil {
		return entities.User{}, err
	}

	c.user = &u

	if v, err := EncodeUser(u); err != nil {
		log.WithError(err).Error("failed to encode user")
	} else if err := c.s.Save(ctx, entities.UserKey, v); err != nil {
		log.WithError(err).Error("failed to persist user, session will not survive restart")
	}

	log.WithField("user", u.ID).Info("logged in")

	return u, nil
}

// Logout clears the user and removes its record.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return ErrNotLoggedIn
	}

	log.WithField("user", c.user.ID).Info("logged out")
	c.user = nil

	if err := c.s.Remove(ctx, entities.UserKey); err != nil {
		log.WithError(err).Error("failed to remove user record")
	}

	return nil
}

// Current returns a copy of the logged in user.
func (c *Controller) Current() (*entities.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.user == nil {
		return nil, false
	}

	u := *c.user

	return &u, true
}

// State ...
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state()
}

func (c *Controller) state() State {
	if c.user == nil {
		return LoggedOut
	}

	return LoggedIn
}

// EncodeUser ...
func EncodeUser(u entities.User) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user: %w", err)
	}

	return string(b), nil
}

// DecodeUser parses a stored user. A record without id is rejected.
func DecodeUser(s string) (entities.User, error) {
	var u entities.User
	if err := json.Unmarshal([]byte(s), &u); err != nil {
		return entities.User{}, fmt.Errorf("%w: %s", ErrMalformedUser, err.Error())
	}

	if u.ID == "" {
		return entities.User{}, fmt.Errorf("%w: empty id", ErrMalformedUser)
	}

	return u, nil
}
