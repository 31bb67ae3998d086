package realtime

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/firestore"

	"listed/pkg/logger"
)

// Streamer turns Firestore document listeners into websocket payloads. Each
// subscription owns one snapshot iterator; the returned cancel must be called
// on unsubscribe or disconnect so the listener is always released.
type Streamer struct {
	client *firestore.Client
}

func NewStreamer(client *firestore.Client) *Streamer {
	return &Streamer{client: client}
}

// Subscribe starts forwarding snapshots of collection/id into send. Every
// snapshot, including the initial one, is delivered in order; snapshots of
// different subscriptions carry no ordering guarantee relative to each other.
func (s *Streamer) Subscribe(ctx context.Context, collection, id string, send chan<- []byte) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		iter := s.client.Collection(collection).Doc(id).Snapshots(ctx)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				// Cancellation lands here too; either way the listener ends.
				logger.Debug("Snapshot stream for %s/%s ended: %v", collection, id, err)
				return
			}

			var payload []byte
			if snap.Exists() {
				payload, err = json.Marshal(map[string]interface{}{
					"type":       "snapshot",
					"collection": collection,
					"id":         id,
					"data":       snap.Data(),
				})
			} else {
				payload, err = json.Marshal(map[string]interface{}{
					"type":       "removed",
					"collection": collection,
					"id":         id,
				})
			}
			if err != nil {
				logger.Warn("Failed to marshal snapshot for %s/%s: %v", collection, id, err)
				continue
			}

			select {
			case send <- payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return cancel
}
