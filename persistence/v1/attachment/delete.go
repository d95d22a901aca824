package attachment

import (
	"context"
	"fmt"

	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

// DeleteByNote removes every attachment row belonging to a note
func DeleteByNote(ctx context.Context, tx dbx.DBTX, noteId string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	stmt, err := tx.PrepareContext(dbCtx, "DELETE FROM attachments WHERE noteId = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, noteId); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	return nil
}
