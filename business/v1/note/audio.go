package note

import (
	"context"

	"github.com/ribgsilva/audio-note-api/persistence/v1/attachment"
	"github.com/ribgsilva/audio-note-api/persistence/v1/blobs"
	"github.com/ribgsilva/audio-note-api/sys"
	"gocloud.dev/blob"
)

// Audio opens the blob of one attachment for streaming. The caller closes
// the reader.
func Audio(ctx context.Context, owner, id, audioId string) (*blob.Reader, Attachment, error) {
	if _, err := findOwned(ctx, owner, id); err != nil {
		return nil, Attachment{}, err
	}

	atts, err := attachment.FindByNote(ctx, sys.R.Database, id)
	if err != nil {
		return nil, Attachment{}, &StorageError{Op: "list attachments", Err: err}
	}

	for _, a := range atts {
		if a.Id == audioId {
			r, err := blobs.Reader(ctx, a.BlobKey)
			if err != nil {
				return nil, Attachment{}, &StorageError{Op: "open audio blob", Err: err}
			}
			return r, toAttachment(a), nil
		}
	}
	return nil, Attachment{}, ErrNotFound
}
