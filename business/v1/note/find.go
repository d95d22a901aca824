package note

import (
	"context"

	"github.com/ribgsilva/audio-note-api/persistence/v1/attachment"
	"github.com/ribgsilva/audio-note-api/persistence/v1/note"
	"github.com/ribgsilva/audio-note-api/sys"
)

// Find returns one of the owner's notes with its attachments
func Find(ctx context.Context, owner, id string) (Note, error) {
	existing, err := findOwned(ctx, owner, id)
	if err != nil {
		return Note{}, err
	}

	atts, err := attachment.FindByNote(ctx, sys.R.Database, id)
	if err != nil {
		return Note{}, &StorageError{Op: "list attachments", Err: err}
	}

	return toNote(existing, atts), nil
}

// findOwned resolves a note id for an owner. An unknown id and an ownership
// mismatch are indistinguishable to the caller.
func findOwned(ctx context.Context, owner, id string) (note.Note, error) {
	existing, err := note.Find(ctx, sys.R.Database, id)
	if err != nil {
		return note.Note{}, &StorageError{Op: "find note", Err: err}
	}
	if existing.Id == "" || existing.Owner != owner {
		return note.Note{}, ErrNotFound
	}
	return existing, nil
}
