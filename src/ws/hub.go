package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/freelancenexus/nexus-go/src/logger"
)

// Hub tracks live notification feeds keyed by recipient. A recipient
// may hold several connections (multiple tabs or devices).
type Hub struct {
	mu    sync.RWMutex
	conns map[uint]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint]map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(recipientID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[recipientID] == nil {
		h.conns[recipientID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[recipientID][conn] = struct{}{}
}

func (h *Hub) Unregister(recipientID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[recipientID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, recipientID)
		}
	}
}

// Send pushes a JSON payload to every live connection of the
// recipient. Dead connections are dropped from the registry.
func (h *Hub) Send(recipientID uint, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal websocket payload")
		return
	}

	h.mu.RLock()
	set := h.conns[recipientID]
	targets := make([]*websocket.Conn, 0, len(set))
	for conn := range set {
		targets = append(targets, conn)
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.Unregister(recipientID, conn)
			conn.Close()
		}
	}
}

func (h *Hub) ConnectionCount(recipientID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[recipientID])
}
