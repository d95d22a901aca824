package schema

import (
	"context"
	"errors"

	"github.com/ribgsilva/audio-note-api/sys"
)

func Drop(ctx context.Context) error {
	db := sys.R.Database

	for _, s := range dropStatements {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return errors.New("drop schema: " + err.Error())
		}
	}

	return nil
}
