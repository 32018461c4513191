// Package ws streams committed domain events to websocket subscribers.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"furrow/internal/domain/farmer"
)

const subscriberBuffer = 256

type subscriber struct {
	out chan []byte
}

// Hub fans events out per session. A slow subscriber drops messages rather
// than stall the action that published them.
type Hub struct {
	log      *log.Logger
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		subs: map[string]map[*subscriber]struct{}{},
	}
}

func (h *Hub) Publish(sessionID string, events []farmer.DomainEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[sessionID]
	if len(set) == 0 {
		return
	}
	for _, evt := range events {
		b, err := json.Marshal(evt)
		if err != nil {
			h.log.Printf("ws: encode %s: %v", evt.Type, err)
			continue
		}
		for sub := range set {
			select {
			case sub.out <- b:
			default:
			}
		}
	}
}

func (h *Hub) Subscribers(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[sessionID])
}

func (h *Hub) join(sessionID string) *subscriber {
	sub := &subscriber{out: make(chan []byte, subscriberBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[sessionID]
	if !ok {
		set = map[*subscriber]struct{}{}
		h.subs[sessionID] = set
	}
	set[sub] = struct{}{}
	return sub
}

func (h *Hub) leave(sessionID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[sessionID]
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sessionID)
	}
}

// Handler upgrades GET /ws?session_id= and streams that session's events.
func (h *Hub) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
		if sessionID == "" {
			http.Error(rw, "session_id is required", http.StatusBadRequest)
			return
		}
		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		sub := h.join(sessionID)
		defer h.leave(sessionID, sub)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				return
			case b := <-sub.out:
				_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					h.log.Printf("ws: write to %s: %v", sessionID, err)
					return
				}
			}
		}
	}
}
