package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func isStopped(c *Client) bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func TestReconnectStopsSupersededClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	first := NewClient("user-1", nil)
	second := NewClient("user-1", nil)

	hub.Register <- first
	hub.Register <- second

	// The replaced connection must be released, not left draining a
	// channel nobody writes to anymore.
	assert.Eventually(t, func() bool { return isStopped(first) }, time.Second, 10*time.Millisecond)
	assert.False(t, isStopped(second))

	hub.SendToUser("user-1", []byte(`{"event":"ping"}`))
	select {
	case payload := <-second.Send:
		assert.JSONEq(t, `{"event":"ping"}`, string(payload))
	case <-time.After(time.Second):
		t.Fatal("expected the active client to receive the payload")
	}
	assert.Empty(t, first.Send)
}

func TestUnregisterStaleClientKeepsActiveOne(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	first := NewClient("user-1", nil)
	second := NewClient("user-1", nil)

	hub.Register <- first
	hub.Register <- second

	// The stale connection's read loop tears down after the swap; its
	// unregister must not evict the client that replaced it.
	hub.Unregister <- first
	assert.Eventually(t, func() bool { return isStopped(first) }, time.Second, 10*time.Millisecond)

	hub.SendToUser("user-1", []byte(`{"event":"still-here"}`))
	select {
	case <-second.Send:
	case <-time.After(time.Second):
		t.Fatal("expected the replacement client to stay registered")
	}
}

func TestSendToStoppedClientDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	hub.Start(ctx)

	client := NewClient("user-1", nil)
	hub.Register <- client
	client.stop()
	client.stop() // idempotent

	done := make(chan struct{})
	go func() {
		hub.SendToUser("user-1", []byte("late"))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SendToUser blocked on a stopped client")
	}
}
