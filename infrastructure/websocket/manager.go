package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"photo-dashboard/domain/models"
	"photo-dashboard/pkg/logger"
)

// Conn is the subset of a websocket connection the manager writes to
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Message is the envelope pushed to browser tabs
type Message struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

const MessageTypeNotification = "notification"

type client struct {
	conn      Conn
	sessionID uuid.UUID
	writeMu   sync.Mutex
}

func (c *client) send(msg Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Manager fans notifications out to every connection attached to a session
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[Conn]*client
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]map[Conn]*client)}
}

func (m *Manager) RegisterClient(conn Conn, sessionID uuid.UUID) {
	m.mu.Lock()
	clients, ok := m.sessions[sessionID]
	if !ok {
		clients = make(map[Conn]*client)
		m.sessions[sessionID] = clients
	}
	clients[conn] = &client{conn: conn, sessionID: sessionID}
	count := len(clients)
	m.mu.Unlock()

	logger.WebSocket("client_registered", "Client attached to session", map[string]interface{}{
		"session_id":  sessionID.String(),
		"connections": count,
	})
}

func (m *Manager) UnregisterClient(conn Conn, sessionID uuid.UUID) {
	m.mu.Lock()
	if clients, ok := m.sessions[sessionID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(m.sessions, sessionID)
		}
	}
	m.mu.Unlock()

	logger.WebSocket("client_unregistered", "Client detached from session", map[string]interface{}{
		"session_id": sessionID.String(),
	})
}

// DisconnectSession closes every connection of a session, used when the session ends
func (m *Manager) DisconnectSession(sessionID uuid.UUID) {
	m.mu.Lock()
	clients := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	for conn := range clients {
		conn.Close()
	}
}

// Notify implements services.Notifier. Failed writes drop the connection.
func (m *Manager) Notify(sessionID uuid.UUID, n models.Notification) {
	msg := Message{
		Type:      MessageTypeNotification,
		SessionID: sessionID.String(),
		Data:      n,
		Timestamp: time.Now(),
	}

	m.mu.RLock()
	targets := make([]*client, 0, len(m.sessions[sessionID]))
	for _, c := range m.sessions[sessionID] {
		targets = append(targets, c)
	}
	m.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(msg); err != nil {
			logger.WebSocketError("send", "Dropping connection after failed write", err, map[string]interface{}{
				"session_id": sessionID.String(),
			})
			m.UnregisterClient(c.conn, sessionID)
			c.conn.Close()
		}
	}
}

// ConnectionCount returns the number of attached connections
func (m *Manager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, clients := range m.sessions {
		total += len(clients)
	}
	return total
}
