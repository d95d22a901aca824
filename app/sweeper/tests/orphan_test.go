package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ribgsilva/audio-note-api/app/sweeper/consumers/v1/orphans"
	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/sys"
	"go.uber.org/zap"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

func TestSweepOrphanBlobs(t *testing.T) {
	sys.Configs.Blobs.OperationTimeout = 30 * time.Second
	sys.R.Log = zap.NewNop().Sugar()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	sys.R.Blobs = bucket

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := []string{
		"audio/note-1/att-1-first.wav",
		"audio/note-1/att-2-second.wav",
	}
	for _, k := range keys {
		if err := bucket.WriteAll(ctx, k, []byte("orphaned"), nil); err != nil {
			t.Fatalf("failed to seed blob %s: %v", k, err)
		}
	}

	topic := mempubsub.NewTopic()
	defer topic.Shutdown(ctx)
	sub := mempubsub.NewSubscription(topic, time.Second)
	defer sub.Shutdown(ctx)

	done := make(chan error, 1)
	go func() {
		done <- orphans.Consume(ctx, sub, 2)
	}()

	body, err := json.Marshal(note.Event{
		Type: note.EventOrphanBlobs,
		Data: note.OrphanBlobs{Keys: keys},
	})
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	if err := topic.Send(ctx, &pubsub.Message{Body: body}); err != nil {
		t.Fatalf("failed to send event: %v", err)
	}

	// unrelated events must be acked and skipped without touching blobs
	other, _ := json.Marshal(note.Event{Type: note.EventCreated, Data: map[string]string{"id": "note-2"}})
	if err := topic.Send(ctx, &pubsub.Message{Body: other}); err != nil {
		t.Fatalf("failed to send event: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		gone := true
		for _, k := range keys {
			if exists, _ := bucket.Exists(ctx, k); exists {
				gone = false
			}
		}
		if gone {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("orphan blobs were not swept before the deadline")
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Consume returned an error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Consume did not stop after cancel")
	}
}

func TestFailedSweepIsRedelivered(t *testing.T) {
	sys.Configs.Blobs.OperationTimeout = 30 * time.Second
	sys.R.Log = zap.NewNop().Sugar()

	// a closed bucket makes the first sweep fail, so the message must come
	// back instead of being dropped
	broken := memblob.OpenBucket(nil)
	_ = broken.Close()
	sys.R.Blobs = broken

	topic := mempubsub.NewTopic()
	defer topic.Shutdown(context.Background())
	sub := mempubsub.NewSubscription(topic, time.Second)
	defer sub.Shutdown(context.Background())

	firstCtx, firstCancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- orphans.Consume(firstCtx, sub, 1)
	}()

	key := "audio/note-9/att-9-sticky.wav"
	body, err := json.Marshal(note.Event{
		Type: note.EventOrphanBlobs,
		Data: note.OrphanBlobs{Keys: []string{key}},
	})
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	if err := topic.Send(context.Background(), &pubsub.Message{Body: body}); err != nil {
		t.Fatalf("failed to send event: %v", err)
	}

	// let the delivery hit the broken bucket and get nacked, then stop the
	// first consumer
	time.Sleep(300 * time.Millisecond)
	firstCancel()
	select {
	case err := <-firstDone:
		if err != nil {
			t.Fatalf("Consume returned an error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Consume did not stop after cancel")
	}

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	if err := bucket.WriteAll(context.Background(), key, []byte("orphaned"), nil); err != nil {
		t.Fatalf("failed to seed blob: %v", err)
	}
	sys.R.Blobs = bucket

	// a second consumer must receive the nacked message again and sweep it
	secondCtx, secondCancel := context.WithCancel(context.Background())
	secondDone := make(chan error, 1)
	go func() {
		secondDone <- orphans.Consume(secondCtx, sub, 1)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		if exists, _ := bucket.Exists(context.Background(), key); !exists {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("the failed sweep was never redelivered")
		}
		time.Sleep(20 * time.Millisecond)
	}

	secondCancel()
	select {
	case err := <-secondDone:
		if err != nil {
			t.Fatalf("Consume returned an error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Consume did not stop after cancel")
	}
}
