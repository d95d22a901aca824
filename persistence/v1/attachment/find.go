package attachment

import (
	"context"
	"fmt"
	"sort"

	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

// FindByNote returns the attachments of a note sorted by upload time then id,
// so listings are deterministic
func FindByNote(ctx context.Context, tx dbx.DBTX, noteId string) ([]Attachment, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	stmt, err := tx.PrepareContext(dbCtx, "SELECT * FROM attachments WHERE noteId = ?")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, noteId)
	if err != nil {
		return nil, fmt.Errorf("failed to query find stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var attachments []Attachment
	for rows.Next() {
		var a Attachment
		if err := rows.Scan(&a.Id, &a.NoteId, &a.BlobKey, &a.ContentType, &a.SizeBytes, &a.UploadedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		attachments = append(attachments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	sort.Slice(attachments, func(i, j int) bool {
		if !attachments[i].UploadedAt.Equal(attachments[j].UploadedAt) {
			return attachments[i].UploadedAt.Before(attachments[j].UploadedAt)
		}
		return attachments[i].Id < attachments[j].Id
	})
	return attachments, nil
}
