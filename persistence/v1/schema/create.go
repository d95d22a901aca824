package schema

import (
	"context"
	"errors"

	"github.com/ribgsilva/audio-note-api/sys"
)

func Create(ctx context.Context) error {
	db := sys.R.Database

	for _, s := range statements {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}
