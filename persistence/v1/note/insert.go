package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

func Insert(ctx context.Context, tx dbx.DBTX, n Note) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	stmt, err := tx.PrepareContext(dbCtx, "INSERT INTO notes (id, owner, title, description, updatedAt, createdAt) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, n.Id, n.Owner, n.Title, n.Description, n.UpdatedAt, n.CreatedAt); err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return nil
}
