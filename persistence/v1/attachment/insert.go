package attachment

import (
	"context"
	"fmt"

	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

func Insert(ctx context.Context, tx dbx.DBTX, a Attachment) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	stmt, err := tx.PrepareContext(dbCtx, "INSERT INTO attachments (id, noteId, blobKey, contentType, sizeBytes, uploadedAt) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, a.Id, a.NoteId, a.BlobKey, a.ContentType, a.SizeBytes, a.UploadedAt); err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return nil
}
