package handler

import (
	"context"
	"encoding/json"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"listed/internal/infrastructure/firebase"
	"listed/internal/infrastructure/realtime"
	"listed/internal/usecase"
	"listed/pkg/errors"
	"listed/pkg/logger"
)

type RealtimeHandler struct {
	hub      *realtime.Hub
	streamer *realtime.Streamer
	auth     *firebase.FirebaseAuthClient
}

var realtimeHandler *RealtimeHandler

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewRealtimeHandler(hub *realtime.Hub, streamer *realtime.Streamer, auth *firebase.FirebaseAuthClient) *RealtimeHandler {
	return &RealtimeHandler{
		hub:      hub,
		streamer: streamer,
		auth:     auth,
	}
}

func SetupRealtimeHandler(hub *realtime.Hub, streamer *realtime.Streamer, auth *firebase.FirebaseAuthClient) {
	realtimeHandler = NewRealtimeHandler(hub, streamer, auth)
}

func GetRealtimeHandler() *RealtimeHandler {
	return realtimeHandler
}

type realtimeCommand struct {
	Action     string `json:"action"`
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

// streamCollection maps the client-facing name onto the backing collection.
// Complaints are included so reporters can watch their ticket status live.
func streamCollection(name string) (string, bool) {
	switch name {
	case "pitches":
		return usecase.CollectionFundingPitches, true
	case "platform-offers":
		return usecase.CollectionPlatformOffers, true
	case "sales-offers":
		return usecase.CollectionSalesOffers, true
	case "complaints":
		return "complaints", true
	default:
		return "", false
	}
}

// HandleWebSocket upgrades the connection and runs the subscription loop.
// Browsers cannot set headers on websocket dials, so the ID token arrives as
// a query parameter instead.
func (h *RealtimeHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	uid, err := h.auth.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := realtime.NewClient(uid, conn)

	h.hub.Register <- client
	go client.WritePump()

	h.readLoop(client)
	return nil
}

// readLoop processes subscribe/unsubscribe commands until the socket closes.
// Every listener opened here is cancelled before the loop returns, so a
// dropped connection never leaks a Firestore listener.
func (h *RealtimeHandler) readLoop(client *realtime.Client) {
	type subKey struct {
		collection string
		id         string
	}
	subscriptions := make(map[subKey]context.CancelFunc)

	defer func() {
		for _, cancel := range subscriptions {
			cancel()
		}
		h.hub.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd realtimeCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			h.sendError(client, "Malformed command")
			continue
		}

		collection, ok := streamCollection(cmd.Collection)
		if !ok || cmd.ID == "" {
			h.sendError(client, "Unknown subscription target")
			continue
		}
		key := subKey{collection: collection, id: cmd.ID}

		switch cmd.Action {
		case "subscribe":
			if _, exists := subscriptions[key]; exists {
				continue
			}
			subscriptions[key] = h.streamer.Subscribe(context.Background(), collection, cmd.ID, client.Send)

		case "unsubscribe":
			if cancel, exists := subscriptions[key]; exists {
				cancel()
				delete(subscriptions, key)
			}

		default:
			h.sendError(client, "Unknown action")
		}
	}
}

func (h *RealtimeHandler) sendError(client *realtime.Client, message string) {
	payload, err := json.Marshal(map[string]string{
		"type":    "error",
		"message": message,
	})
	if err != nil {
		logger.Error("Failed to marshal realtime error: %v", err)
		return
	}
	h.hub.SendToUser(client.UserID, payload)
}
