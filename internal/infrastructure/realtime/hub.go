package realtime

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"listed/pkg/logger"
)

// Client is one connected browser session. Send is never closed; shutdown is
// signalled through done so producers (the hub, snapshot streamers) can keep
// a reference to the channel without risking a send on a closed channel.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	done     chan struct{}
	stopOnce sync.Once
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		done:   make(chan struct{}),
	}
}

// stop signals the client's WritePump to drain out. Safe to call from the
// hub loop and the connection's read loop concurrently.
func (c *Client) stop() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}

// Hub tracks connected clients and routes server-side pushes to them. One
// client per user: a newer connection for the same uid supersedes the older
// one, which is stopped so its write pump never lingers.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the hub's registration loop until ctx is done.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				prev := h.clients[client.UserID]
				h.clients[client.UserID] = client
				h.mutex.Unlock()
				if prev != nil && prev != client {
					prev.stop()
					logger.Debug("Realtime client superseded: %s", client.UserID)
				}
				logger.Debug("Realtime client registered: %s", client.UserID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if current, ok := h.clients[client.UserID]; ok && current == client {
					delete(h.clients, client.UserID)
				}
				h.mutex.Unlock()
				// A superseded client was already stopped at overwrite time;
				// stop is idempotent either way.
				client.stop()
				logger.Debug("Realtime client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser delivers a payload to a connected user. Disconnected or slow
// clients are dropped rather than blocking the caller.
func (h *Hub) SendToUser(userID string, payload []byte) {
	h.mutex.RLock()
	client, ok := h.clients[userID]
	h.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case <-client.done:
	case client.Send <- payload:
	default:
		logger.Warn("Dropping realtime payload for slow client %s", userID)
	}
}

// WritePump drains the send channel onto the socket until the client is
// stopped.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		select {
		case payload := <-c.Send:
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Debug("Realtime write to %s failed: %v", c.UserID, err)
				return
			}

		case <-c.done:
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
