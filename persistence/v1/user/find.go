package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

// FindByUsername returns the user with the given username, or a zero User
// when no such user exists
func FindByUsername(ctx context.Context, tx dbx.DBTX, username string) (User, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	stmt, err := tx.PrepareContext(dbCtx, "SELECT * FROM users WHERE username = ?")
	if err != nil {
		return User{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}

	var u User
	err = stmt.QueryRowContext(dbCtx, username).Scan(&u.Id, &u.Username, &u.PasswordHash, &u.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return User{}, nil
	case err != nil:
		return User{}, fmt.Errorf("error parsing db data: %w", err)
	default:
		return u, nil
	}
}
