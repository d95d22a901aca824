package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

// Update rewrites the mutable fields of a note. The caller invalidates the
// cache entry once the surrounding transaction has committed.
func Update(ctx context.Context, tx dbx.DBTX, n Note) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	// updatedAt goes first: ramsql inlines bound timestamps into the
	// statement and only lexes them when a comma or bracket follows
	stmt, err := tx.PrepareContext(dbCtx, "UPDATE notes SET updatedAt = ?, title = ?, description = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, n.UpdatedAt, n.Title, n.Description, n.Id); err != nil {
		return fmt.Errorf("failed to exec update stmt: %w", err)
	}

	return nil
}

// Invalidate drops the cache entry of a note. Call it after the transaction
// that changed the row has committed, never before, or a concurrent Find can
// re-cache the old row for a full TTL.
func Invalidate(ctx context.Context, id string) {
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Del(tcCtx, fmt.Sprintf(noteKey, id)).Err(); err != nil {
		sys.R.Log.Error("failure to invalidate note ", id, " in cache: ", err.Error())
	}
}
