package user

import (
	"context"
	"fmt"

	"github.com/ribgsilva/audio-note-api/persistence/v1/user"
	"github.com/ribgsilva/audio-note-api/platform/token"
	"github.com/ribgsilva/audio-note-api/sys"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies the credentials and mints a bearer token. Unknown username
// and wrong password produce the same error.
func Login(ctx context.Context, creds Credentials) (Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return Session{}, ErrUnauthenticated
	}

	existing, err := user.FindByUsername(ctx, sys.R.Database, creds.Username)
	if err != nil {
		return Session{}, fmt.Errorf("failed to find user: %w", err)
	}
	if existing.Id == "" {
		return Session{}, ErrUnauthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(creds.Password)); err != nil {
		return Session{}, ErrUnauthenticated
	}

	t, err := token.Generate(existing.Id, []byte(sys.Configs.Auth.Secret), sys.Configs.Auth.TokenValidity)
	if err != nil {
		return Session{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return Session{Token: t}, nil
}
