package ws

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/jamoveo/jamoveo-backend/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client connects from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades HTTP requests to websocket connections and bridges
// them to the session coordinator.
type Handler struct {
	Coordinator *session.Coordinator
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Failed to upgrade connection: %v", err)
		return
	}

	client := session.NewClient(uuid.NewString())
	h.Coordinator.Register <- client

	// Read pump: decodes client events and feeds them to the coordinator.
	go func() {
		defer func() {
			h.Coordinator.Unregister <- client
			conn.Close()
		}()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[WS] Read error for client %s: %v", client.ID, err)
				}
				break
			}
			event, err := session.DecodeClientEvent(msg)
			if err != nil {
				log.Printf("[WS] Dropping malformed event from %s: %v", client.ID, err)
				continue
			}
			h.Coordinator.Inbound <- session.Inbound{Client: client, Event: event}
		}
	}()

	// Write pump: drains the coordinator's messages to the socket.
	go func() {
		defer conn.Close()
		for message := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] Write error for client %s: %v", client.ID, err)
				return
			}
		}
	}()
}
