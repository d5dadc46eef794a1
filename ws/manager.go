package ws

import (
	"sync"

	"unigig_backend/internal/logger"
)

// OutgoingEvent — конверт всех исходящих событий хаба.
type OutgoingEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Manager держит подключённых клиентов, по одному соединению на
// пользователя. Повторное подключение вытесняет предыдущее.
type Manager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if old, ok := m.clients[client.UserID]; ok {
				close(old.Send)
				if old.Conn != nil {
					old.Conn.Close()
				}
			}
			m.clients[client.UserID] = client
			total := len(m.clients)
			m.mu.Unlock()
			logger.Info("ws client connected", "user_id", client.UserID, "total", total)

		case client := <-m.unregister:
			m.mu.Lock()
			if current, ok := m.clients[client.UserID]; ok && current == client {
				close(client.Send)
				delete(m.clients, client.UserID)
			}
			total := len(m.clients)
			m.mu.Unlock()
			logger.Info("ws client disconnected", "user_id", client.UserID, "total", total)
		}
	}
}

// SendToUser толкает событие пользователю, если тот онлайн.
// Возвращает true, когда событие поставлено в очередь клиента.
// Переполненная очередь считается мёртвым соединением.
// RLock держится на время отправки: Run закрывает Send только под
// полным Lock, так что отправка в закрытый канал исключена.
func (m *Manager) SendToUser(userID string, event string, payload interface{}) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	client, ok := m.clients[userID]
	if !ok {
		return false
	}

	select {
	case client.Send <- OutgoingEvent{Event: event, Data: payload}:
		return true
	default:
		logger.Warn("ws send queue full, dropping client", "user_id", userID)
		go func() { m.unregister <- client }()
		return false
	}
}

func (m *Manager) IsClientConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.clients[userID]
	return exists
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
