package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
)

// Find returns the note with the given id, or a zero Note when it does not
// exist. Reads go through the cache; cache failures fall back to the database.
func Find(ctx context.Context, tx dbx.DBTX, id string) (Note, error) {
	logger := sys.R.Log
	cache := sys.R.Cache

	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get note ", id, " from cache: ", err.Error())
	}
	if get != "" {
		var n Note
		if err := json.Unmarshal([]byte(get), &n); err != nil {
			logger.Error("error parsing cached response for key ", key, ": ", err.Error())
		} else {
			return n, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := tx.PrepareContext(dbCtx, "SELECT * FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}

	var n Note
	err = stmt.QueryRowContext(dbCtx, id).Scan(&n.Id, &n.Owner, &n.Title, &n.Description, &n.UpdatedAt, &n.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("error parsing db data: %w", err)
	}

	if data, err := json.Marshal(n); err != nil {
		logger.Error("error marshalling note ", id, " for cache: ", err.Error())
	} else {
		scCtx, scCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer scCancel()
		if err := cache.Set(scCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
			logger.Error("failure to set note ", id, " into cache: ", err.Error())
		}
	}

	return n, nil
}

// FindByOwner returns every note belonging to the given owner
func FindByOwner(ctx context.Context, tx dbx.DBTX, owner string) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	stmt, err := tx.PrepareContext(dbCtx, "SELECT * FROM notes WHERE owner = ?")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query find stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.Id, &n.Owner, &n.Title, &n.Description, &n.UpdatedAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}
	return notes, nil
}
