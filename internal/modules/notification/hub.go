package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live connection per user and fans status events out to all
// of them. Back-office clients use it to refresh boards without polling.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// Broadcast sends the event to every connected user. Dead connections are
// dropped on write failure.
func (h *Hub) Broadcast(message interface{}) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for userID, conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(userID)
		}
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
