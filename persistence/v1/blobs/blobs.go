// Package blobs wraps the bucket that stores raw audio bytes. Keys are
// derived from the owning note and attachment ids so uploads can never
// collide across notes, whatever filename the caller declared.
package blobs

import (
	"context"
	"fmt"
	"path"

	"github.com/ribgsilva/audio-note-api/sys"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Key derives the unique bucket key for one attachment
func Key(noteId, attachmentId, filename string) string {
	return fmt.Sprintf("audio/%s/%s-%s", noteId, attachmentId, path.Base(filename))
}

// Write stores one blob under the given key
func Write(ctx context.Context, key string, data []byte, contentType string) error {
	bCtx, bCancel := context.WithTimeout(ctx, sys.Configs.Blobs.OperationTimeout)
	defer bCancel()

	if err := sys.R.Blobs.WriteAll(bCtx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

// Delete removes one blob. Deleting a missing blob is not an error.
func Delete(ctx context.Context, key string) error {
	bCtx, bCancel := context.WithTimeout(ctx, sys.Configs.Blobs.OperationTimeout)
	defer bCancel()

	if err := sys.R.Blobs.Delete(bCtx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// Reader opens one blob for streaming reads. The caller closes it.
func Reader(ctx context.Context, key string) (*blob.Reader, error) {
	r, err := sys.R.Blobs.NewReader(ctx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob %s: %w", key, err)
	}
	return r, nil
}

// Exists reports whether a blob is resolvable
func Exists(ctx context.Context, key string) (bool, error) {
	bCtx, bCancel := context.WithTimeout(ctx, sys.Configs.Blobs.OperationTimeout)
	defer bCancel()
	return sys.R.Blobs.Exists(bCtx, key)
}

// Cleanup best-effort deletes a set of blobs, logging failures and returning
// the keys it could not remove
func Cleanup(ctx context.Context, keys []string) []string {
	var failed []string
	for _, key := range keys {
		if err := Delete(ctx, key); err != nil {
			sys.R.Log.Warn("failed to clean up blob ", key, ": ", err.Error())
			failed = append(failed, key)
		}
	}
	return failed
}
