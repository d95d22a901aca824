package note

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/audio-note-api/persistence/v1/attachment"
	"github.com/ribgsilva/audio-note-api/persistence/v1/blobs"
	"github.com/ribgsilva/audio-note-api/persistence/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

// Create validates every upload, stores the blobs, and then inserts the note
// row plus one attachment row per blob in a single transaction. A validation
// failure aborts before any persistence; a transaction failure removes the
// blobs written for this request.
func Create(ctx context.Context, owner string, newN NewNote) (Note, error) {
	if err := validate(newN.Title, newN.Uploads); err != nil {
		return Note{}, err
	}

	now := time.Now().UTC()
	created := note.Note{
		Id:          uuid.NewString(),
		Owner:       owner,
		Title:       newN.Title,
		Description: newN.Description,
		UpdatedAt:   now,
		CreatedAt:   now,
	}

	atts, written, err := writeUploads(ctx, created.Id, newN.Uploads, now)
	if err != nil {
		return Note{}, err
	}

	if err := dbx.WithTx(ctx, sys.R.Database, func(ctx context.Context, tx dbx.DBTX) error {
		if err := note.Insert(ctx, tx, created); err != nil {
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
		return Note{}, &StorageError{Op: "create note", Err: err}
	}

	result := toNote(created, atts)
	publish(ctx, Event{Type: EventCreated, Data: result})
	return result, nil
}

// writeUploads stores one blob per upload and builds the attachment rows.
// On failure the blobs already written for this request are removed.
func writeUploads(ctx context.Context, noteId string, uploads []Upload, at time.Time) ([]attachment.Attachment, []string, error) {
	atts := make([]attachment.Attachment, 0, len(uploads))
	written := make([]string, 0, len(uploads))

	for _, up := range uploads {
		a := attachment.Attachment{
			Id:          uuid.NewString(),
			NoteId:      noteId,
			ContentType: up.ContentType,
			SizeBytes:   up.Size,
			UploadedAt:  at,
		}
		a.BlobKey = blobs.Key(noteId, a.Id, up.Name)

		if err := blobs.Write(ctx, a.BlobKey, up.Data, up.ContentType); err != nil {
			blobs.Cleanup(ctx, written)
			return nil, nil, &StorageError{Op: "write audio blob", Err: err}
		}

		written = append(written, a.BlobKey)
		atts = append(atts, a)
	}

	return atts, written, nil
}
