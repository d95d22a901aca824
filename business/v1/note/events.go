package note

import (
	"context"
	"encoding/json"

	"github.com/ribgsilva/audio-note-api/sys"
	"gocloud.dev/pubsub"
)

const (
	EventCreated     = "created"
	EventReplaced    = "replaced"
	EventDeleted     = "deleted"
	EventOrphanBlobs = "orphan-blobs"
)

// publish sends an event to the topic best-effort. A missing topic or a
// failed send never fails the operation that produced the event.
func publish(ctx context.Context, event Event) {
	topic := sys.R.Events
	if topic == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		sys.R.Log.Error("failed to marshal ", event.Type, " event: ", err.Error())
		return
	}

	if err := topic.Send(ctx, &pubsub.Message{Body: body}); err != nil {
		sys.R.Log.Error("failed to publish ", event.Type, " event: ", err.Error())
	}
}
