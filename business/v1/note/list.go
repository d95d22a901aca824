package note

import (
	"context"

	"github.com/ribgsilva/audio-note-api/persistence/v1/attachment"
	"github.com/ribgsilva/audio-note-api/persistence/v1/note"
	"github.com/ribgsilva/audio-note-api/sys"
)

// List returns every note belonging to the owner, each with its attachments
func List(ctx context.Context, owner string) ([]Note, error) {
	rows, err := note.FindByOwner(ctx, sys.R.Database, owner)
	if err != nil {
		return nil, &StorageError{Op: "list notes", Err: err}
	}

	notes := make([]Note, 0, len(rows))
	for _, n := range rows {
		atts, err := attachment.FindByNote(ctx, sys.R.Database, n.Id)
		if err != nil {
			return nil, &StorageError{Op: "list attachments", Err: err}
		}
		notes = append(notes, toNote(n, atts))
	}
	return notes, nil
}
