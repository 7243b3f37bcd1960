package session

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/socialspark/spark/internal/entities"
)

//go:generate mockgen -destination=./mock/provider.go -package=mock -source=provider.go

const avatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// Credentials ...
// Name is required on sign up only.
type Credentials struct {
	Name     string
	Email    string
	Password string
	SignUp   bool
}

// AuthenticationProvider turns credentials into a user.
type AuthenticationProvider interface {
	Authenticate(ctx context.Context, c Credentials) (entities.User, error)
}

// MockProvider accepts any complete credentials. Nothing is verified.
type MockProvider struct{}

// Authenticate ...
func (MockProvider) Authenticate(_ context.Context, c Credentials) (entities.User, error) {
	email := strings.TrimSpace(c.Email)
	name := strings.TrimSpace(c.Name)

	if email == "" || c.Password == "" || (c.SignUp && name == "") {
		return entities.User{}, fmt.Errorf("%w: please fill in all fields", entities.ErrValidation)
	}

	id := entities.UserIDFromEmail(email)
	if id == "" {
		return entities.User{}, fmt.Errorf("%w: invalid email", entities.ErrValidation)
	}

	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	return entities.User{
		ID:     id,
		Name:   name,
		Email:  email,
		Avatar: avatarURL + url.QueryEscape(email),
	}, nil
}
