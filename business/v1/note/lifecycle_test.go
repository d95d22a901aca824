package note

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	pnote "github.com/ribgsilva/audio-note-api/persistence/v1/note"
	"github.com/ribgsilva/audio-note-api/persistence/v1/schema"
	"github.com/ribgsilva/audio-note-api/platform/dbx"
	"github.com/ribgsilva/audio-note-api/sys"
	"go.uber.org/zap"
	"gocloud.dev/blob/memblob"

	_ "github.com/proullon/ramsql/driver"
)

// wire points every static resource at in-memory fakes and returns a
// teardown func
func wire(t *testing.T, dbName string) func() {
	t.Helper()

	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Cache.OperationTimeout = 10 * time.Second
	sys.Configs.Cache.CacheTTL = 24 * time.Hour
	sys.Configs.Blobs.OperationTimeout = 30 * time.Second
	sys.Configs.Uploads.MaxBytes = 10 * 1024 * 1024
	sys.Configs.Uploads.AllowedTypes = []string{"audio/mpeg", "audio/wav", "audio/aac"}

	sys.R.Log = zap.NewNop().Sugar()
	sys.R.Events = nil

	s := miniredis.RunT(t)
	sys.R.Cache = redis.NewClient(&redis.Options{Addr: s.Addr()})

	db, err := sql.Open("ramsql", dbName)
	if err != nil {
		t.Fatalf("failed to open ramsql: %v", err)
	}
	sys.R.Database = db

	sys.R.Blobs = memblob.OpenBucket(nil)

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return func() {
		_ = schema.Drop(context.Background())
		_ = sys.R.Blobs.Close()
		_ = sys.R.Cache.Close()
		_ = db.Close()
	}
}

func wav(name string, size int) Upload {
	return Upload{
		Name:        name,
		ContentType: "audio/wav",
		Size:        int64(size),
		Data:        bytes.Repeat([]byte{0x0a}, size),
	}
}

func TestLifecycle(t *testing.T) {
	teardown := wire(t, "LifecycleTest")
	defer teardown()

	ctx := context.Background()

	created, err := Create(ctx, "owner-1", NewNote{
		Title:       "Voice memos",
		Description: "two takes",
		Uploads:     []Upload{wav("audio1.wav", 2048), wav("audio2.wav", 4096)},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(created.Attachments) != 2 {
		t.Fatalf("expected 2 attachments, got %v", created.Attachments)
	}

	// ownership mismatch reads as not-found
	if _, err := Find(ctx, "owner-2", created.Id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}

	// replace-all swaps every attachment and removes the old blobs
	firstIds := map[string]bool{}
	for _, a := range created.Attachments {
		firstIds[a.Id] = true
	}

	replaced, err := Replace(ctx, "owner-1", created.Id, UpdateNote{
		Title:       "Voice memos v2",
		Description: "new takes",
		Uploads:     []Upload{wav("new1.wav", 1024), wav("new2.wav", 1024)},
	})
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if len(replaced.Attachments) != 2 {
		t.Fatalf("expected exactly 2 attachments after replace, got %v", replaced.Attachments)
	}
	for _, a := range replaced.Attachments {
		if firstIds[a.Id] {
			t.Fatalf("attachment %s survived a replace-all", a.Id)
		}
	}

	iter := sys.R.Blobs.List(nil)
	blobCount := 0
	for {
		if _, err := iter.Next(ctx); err != nil {
			break
		}
		blobCount++
	}
	if blobCount != 2 {
		t.Fatalf("expected 2 blobs after replace, got %d", blobCount)
	}

	// metadata-only update keeps the attachment set byte for byte
	kept, err := Replace(ctx, "owner-1", created.Id, UpdateNote{
		Title:       "Voice memos v3",
		Description: "metadata only",
	})
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if len(kept.Attachments) != 2 {
		t.Fatalf("expected attachments untouched, got %v", kept.Attachments)
	}
	for i, a := range kept.Attachments {
		if a.Id != replaced.Attachments[i].Id {
			t.Fatalf("attachment set changed on metadata-only update: %v vs %v", kept.Attachments, replaced.Attachments)
		}
	}

	// declared size is what validation checks
	if _, err := Create(ctx, "owner-1", NewNote{
		Title:   "at the limit",
		Uploads: []Upload{{Name: "limit.wav", ContentType: "audio/wav", Size: sys.Configs.Uploads.MaxBytes, Data: []byte{0x0a}}},
	}); err != nil {
		t.Fatalf("upload at the size limit should be accepted: %v", err)
	}

	if err := Delete(ctx, "owner-1", created.Id); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := Find(ctx, "owner-1", created.Id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	iter = sys.R.Blobs.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if err != nil {
			break
		}
		if len(obj.Key) > len("audio/")+len(created.Id) && obj.Key[:len("audio/")+len(created.Id)] == "audio/"+created.Id {
			t.Fatalf("blob %s should not be resolvable after delete", obj.Key)
		}
	}

	notes, err := List(ctx, "owner-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note left, got %d", len(notes))
	}
}

func TestCacheInvalidationAfterCommit(t *testing.T) {
	teardown := wire(t, "CacheInvalidationTest")
	defer teardown()

	ctx := context.Background()

	created, err := Create(ctx, "owner-1", NewNote{Title: "cached", Description: "v1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := Find(ctx, "owner-1", created.Id); err != nil {
		t.Fatalf("Find error: %v", err)
	}

	key := fmt.Sprintf("notes.%s", created.Id)
	if err := sys.R.Cache.Get(ctx, key).Err(); err != nil {
		t.Fatalf("expected note to be cached after Find: %v", err)
	}

	// a row update alone must leave the cache entry in place, so a pending
	// transaction can never be followed by a premature drop that lets a
	// concurrent Find re-cache uncommitted data
	row := pnote.Note{
		Id:          created.Id,
		Owner:       "owner-1",
		Title:       "direct",
		Description: "v2",
		UpdatedAt:   time.Now().UTC(),
		CreatedAt:   created.CreatedAt,
	}
	if err := dbx.WithTx(ctx, sys.R.Database, func(ctx context.Context, tx dbx.DBTX) error {
		return pnote.Update(ctx, tx, row)
	}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := sys.R.Cache.Get(ctx, key).Err(); err != nil {
		t.Fatalf("a row update must not touch the cache entry: %v", err)
	}

	// Replace drops the entry only after its transaction commits
	if _, err := Replace(ctx, "owner-1", created.Id, UpdateNote{Title: "replaced", Description: "v3"}); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if err := sys.R.Cache.Get(ctx, key).Err(); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected cache entry to be gone after Replace, got %v", err)
	}

	found, err := Find(ctx, "owner-1", created.Id)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if found.Title != "replaced" {
		t.Fatalf("expected the committed title, got %q", found.Title)
	}
}

func TestCreateBlobFailure(t *testing.T) {
	teardown := wire(t, "CreateBlobFailureTest")
	defer teardown()

	ctx := context.Background()

	// a closed bucket makes every write fail
	_ = sys.R.Blobs.Close()

	_, err := Create(ctx, "owner-1", NewNote{
		Title:   "doomed",
		Uploads: []Upload{wav("a.wav", 512)},
	})

	var sErr *StorageError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected a StorageError, got %v", err)
	}

	notes, err := List(ctx, "owner-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("no note should be visible after a failed create, got %d", len(notes))
	}
}

func TestReplaceBlobFailure(t *testing.T) {
	teardown := wire(t, "ReplaceBlobFailureTest")
	defer teardown()

	ctx := context.Background()

	created, err := Create(ctx, "owner-1", NewNote{
		Title:       "stable",
		Description: "before",
		Uploads:     []Upload{wav("a.wav", 512)},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_ = sys.R.Blobs.Close()

	_, err = Replace(ctx, "owner-1", created.Id, UpdateNote{
		Title:   "should not stick",
		Uploads: []Upload{wav("b.wav", 512)},
	})
	var sErr *StorageError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected a StorageError, got %v", err)
	}

	found, err := Find(ctx, "owner-1", created.Id)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if found.Title != "stable" {
		t.Fatalf("title should be unchanged after a failed replace, got %q", found.Title)
	}
	if len(found.Attachments) != 1 || found.Attachments[0].Id != created.Attachments[0].Id {
		t.Fatalf("attachments should be unchanged after a failed replace: %v", found.Attachments)
	}
}
