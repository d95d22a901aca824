package note

import (
	"context"
	"time"

	"github.com/ribgsilva/audio-note-api/persistence/v1/attachment"
	"github.com/ribgsilva/audio-note-api/persistence/v1/blobs"
	"github.com/ribgsilva/audio-note-api/persistence/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

// Replace updates title and description and, when uploads are supplied,
// discards the entire previous attachment set in favor of the new one. With
// no uploads the existing attachments are left untouched. There is no
// partial add or remove.
func Replace(ctx context.Context, owner, id string, upd UpdateNote) (Note, error) {
	existing, err := findOwned(ctx, owner, id)
	if err != nil {
		return Note{}, err
	}
	if err := validate(upd.Title, upd.Uploads); err != nil {
		return Note{}, err
	}

	existing.Title = upd.Title
	existing.Description = upd.Description
	existing.UpdatedAt = time.Now().UTC()

	if len(upd.Uploads) == 0 {
		if err := dbx.WithTx(ctx, sys.R.Database, func(ctx context.Context, tx dbx.DBTX) error {
			return note.Update(ctx, tx, existing)
		}); err != nil {
			return Note{}, &StorageError{Op: "update note", Err: err}
		}
		note.Invalidate(ctx, id)

		atts, err := attachment.FindByNote(ctx, sys.R.Database, id)
		if err != nil {
			return Note{}, &StorageError{Op: "list attachments", Err: err}
		}

		result := toNote(existing, atts)
		publish(ctx, Event{Type: EventReplaced, Data: result})
		return result, nil
	}

	old, err := attachment.FindByNote(ctx, sys.R.Database, id)
	if err != nil {
		return Note{}, &StorageError{Op: "list attachments", Err: err}
	}

	atts, written, err := writeUploads(ctx, id, upd.Uploads, existing.UpdatedAt)
	if err != nil {
		return Note{}, err
	}

	if err := dbx.WithTx(ctx, sys.R.Database, func(ctx context.Context, tx dbx.DBTX) error {
		if err := note.Update(ctx, tx, existing); err != nil {
			return err
		}
		if err := attachment.DeleteByNote(ctx, tx, id); err != nil {
			return err
		}
		for _, a := range atts {
			if err := attachment.Insert(ctx, tx, a); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		blobs.Cleanup(ctx, written)
		return Note{}, &StorageError{Op: "replace note", Err: err}
	}
	note.Invalidate(ctx, id)

	// the old blobs are unreferenced now; a failed delete only leaks disk
	// space, so it goes to the sweeper instead of failing the request
	if failed := blobs.Cleanup(ctx, keysOf(old)); len(failed) > 0 {
		publish(ctx, Event{Type: EventOrphanBlobs, Data: OrphanBlobs{Keys: failed}})
	}

	result := toNote(existing, atts)
	publish(ctx, Event{Type: EventReplaced, Data: result})
	return result, nil
}
