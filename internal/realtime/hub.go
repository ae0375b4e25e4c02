package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub tracks live connections per tenant so they can be counted and closed
// on shutdown.
type Hub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]map[string]*Connection
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]map[string]*Connection),
	}
}

// Register adds a connection under its tenant
func (h *Hub) Register(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	tenant, ok := h.connections[conn.TenantID]
	if !ok {
		tenant = make(map[string]*Connection)
		h.connections[conn.TenantID] = tenant
	}
	tenant[conn.ID] = conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	tenant, ok := h.connections[conn.TenantID]
	if !ok {
		return
	}
	delete(tenant, conn.ID)
	if len(tenant) == 0 {
		delete(h.connections, conn.TenantID)
	}
}

// Count returns the number of live connections for a tenant
func (h *Hub) Count(tenantID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections[tenantID])
}

// CountAll returns the number of live connections across all tenants
func (h *Hub) CountAll() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, tenant := range h.connections {
		total += len(tenant)
	}
	return total
}

// Shutdown closes every live connection
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, tenant := range h.connections {
		for _, conn := range tenant {
			conn.Close(websocket.CloseGoingAway, "server shutting down")
		}
	}
	h.connections = make(map[uuid.UUID]map[string]*Connection)
}
