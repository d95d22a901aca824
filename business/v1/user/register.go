package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/audio-note-api/persistence/v1/user"
	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a user with a bcrypt-hashed password. The password itself
// is never stored.
func Register(ctx context.Context, newU NewUser) (User, error) {
	if newU.Username == "" || newU.Password == "" {
		return User{}, ErrMissingFields
	}

	existing, err := user.FindByUsername(ctx, sys.R.Database, newU.Username)
	if err != nil {
		return User{}, fmt.Errorf("failed to check username: %w", err)
	}
	if existing.Id != "" {
		return User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newU.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created := user.User{
		Id:           uuid.NewString(),
		Username:     newU.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := dbx.WithTx(ctx, sys.R.Database, func(ctx context.Context, tx dbx.DBTX) error {
		return user.Insert(ctx, tx, created)
	}); err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return User{Id: created.Id, Username: created.Username, CreatedAt: created.CreatedAt}, nil
}
