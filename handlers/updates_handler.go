package handlers

import (
	"log"
	"net/http"

	"exam-command-center/be/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Dashboard and backend run on different ports in development
		return true
	},
	EnableCompression: true,
}

// UpdatesHandler streams store change events over a WebSocket so dashboard
// views can refresh without polling.
type UpdatesHandler struct {
	store *store.Store
}

func NewUpdatesHandler(st *store.Store) *UpdatesHandler {
	return &UpdatesHandler{store: st}
}

func (h *UpdatesHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Can't write a JSON response after a failed upgrade attempt
		log.Printf("[Updates] WebSocket upgrade failed: %v\n", err)
		return
	}
	defer conn.Close()

	events, unsubscribe := h.store.Subscribe()
	defer unsubscribe()

	// Reads only serve to detect the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("[Updates] Write failed, dropping subscriber: %v\n", err)
				return
			}
		case <-done:
			return
		}
	}
}
