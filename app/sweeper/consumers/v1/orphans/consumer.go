package orphans

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/persistence/v1/blobs"
	"github.com/ribgsilva/audio-note-api/sys"
	"gocloud.dev/pubsub"
)

// Consume receives note events and retries the blob deletes the API could
// not complete. Other event types are acked and skipped. A sweep that still
// leaves blobs behind nacks the message so the broker redelivers it.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	var err error
	for {
		message, rErr := sub.Receive(ctx)
		if rErr != nil {
			err = rErr
			break
		}

		go func(m *pubsub.Message) {
			workers <- 1
			defer func() { <-workers }()

			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				m.Ack()
				return
			}

			if e.Type != note.EventOrphanBlobs {
				m.Ack()
				return
			}

			marshal, _ := json.Marshal(e.Data)
			var orphans note.OrphanBlobs
			if err := json.Unmarshal(marshal, &orphans); err != nil {
				logger.Error("failed to parse orphan event data: ", err)
				m.Ack()
				return
			}

			logger.Infof("sweeping %d orphan blobs", len(orphans.Keys))
			if failed := blobs.Cleanup(ctx, orphans.Keys); len(failed) > 0 {
				if m.Nackable() {
					logger.Warn("still failing to remove ", len(failed), " blobs, nacking for redelivery")
					m.Nack()
					return
				}
				logger.Warn("still failing to remove ", len(failed), " blobs, broker cannot redeliver")
			}
			m.Ack()
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
