package note

import (
	"context"

	"github.com/ribgsilva/audio-note-api/persistence/v1/attachment"
	"github.com/ribgsilva/audio-note-api/persistence/v1/blobs"
	"github.com/ribgsilva/audio-note-api/persistence/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

// Delete removes a note, its attachment rows, and its blobs. Every blob
// delete is attempted even when one fails; failures go to the sweeper and do
// not fail the operation.
func Delete(ctx context.Context, owner, id string) error {
	if _, err := findOwned(ctx, owner, id); err != nil {
		return err
	}

	atts, err := attachment.FindByNote(ctx, sys.R.Database, id)
	if err != nil {
		return &StorageError{Op: "list attachments", Err: err}
	}

	failed := blobs.Cleanup(ctx, keysOf(atts))

	if err := dbx.WithTx(ctx, sys.R.Database, func(ctx context.Context, tx dbx.DBTX) error {
		if err := attachment.DeleteByNote(ctx, tx, id); err != nil {
			return err
		}
		return note.Delete(ctx, tx, id)
	}); err != nil {
		return &StorageError{Op: "delete note", Err: err}
	}
	note.Invalidate(ctx, id)

	if len(failed) > 0 {
		publish(ctx, Event{Type: EventOrphanBlobs, Data: OrphanBlobs{Keys: failed}})
	}
	publish(ctx, Event{Type: EventDeleted, Data: map[string]string{"id": id}})
	return nil
}
