// Package notify хранит очередь уведомлений клиента и рассылает её
// подписчикам. Уведомления сами исчезают по истечении своей длительности.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Длительности по умолчанию. Ошибки висят дольше: их читают внимательнее.
const (
	DefaultDuration = 5 * time.Second
	ErrorDuration   = 8 * time.Second
)

type Notification struct {
	ID       string
	Type     Type
	Title    string
	Message  string
	Duration time.Duration
}

// Listener получает снимок очереди при каждом изменении. Снимок — копия,
// подписчик может делать с ним что угодно.
type Listener func([]Notification)

type Manager struct {
	mu        sync.Mutex
	items     []Notification
	listeners map[int]Listener
	nextID    int

	// Подменяется в тестах, чтобы не ждать настоящие таймеры.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewManager() *Manager {
	return &Manager{
		listeners: make(map[int]Listener),
		afterFunc: time.AfterFunc,
	}
}

// Add ставит уведомление в очередь и возвращает его идентификатор.
// Нулевая длительность заменяется на DefaultDuration.
func (m *Manager) Add(n Notification) string {
	if n.ID == "" {
		n.ID = fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
	}
	if n.Duration <= 0 {
		n.Duration = DefaultDuration
	}

	m.mu.Lock()
	m.items = append(m.items, n)
	snapshot := m.snapshotLocked()
	listeners := m.listenersLocked()
	m.mu.Unlock()

	m.afterFunc(n.Duration, func() { m.Remove(n.ID) })

	broadcast(listeners, snapshot)
	return n.ID
}

// Remove убирает уведомление из очереди. Повторный вызов с тем же
// идентификатором безвреден.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	removed := false
	for i, n := range m.items {
		if n.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			removed = true
			break
		}
	}
	snapshot := m.snapshotLocked()
	listeners := m.listenersLocked()
	m.mu.Unlock()

	if removed {
		broadcast(listeners, snapshot)
	}
}

// Clear опустошает очередь целиком.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.items = nil
	listeners := m.listenersLocked()
	m.mu.Unlock()

	broadcast(listeners, nil)
}

// Subscribe регистрирует подписчика и возвращает функцию отписки.
func (m *Manager) Subscribe(l Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) Success(title, message string) string {
	return m.Add(Notification{Type: TypeSuccess, Title: title, Message: message})
}

func (m *Manager) Error(title, message string) string {
	return m.Add(Notification{
		Type:     TypeError,
		Title:    title,
		Message:  message,
		Duration: ErrorDuration,
	})
}

func (m *Manager) Warning(title, message string) string {
	return m.Add(Notification{Type: TypeWarning, Title: title, Message: message})
}

func (m *Manager) Info(title, message string) string {
	return m.Add(Notification{Type: TypeInfo, Title: title, Message: message})
}

func (m *Manager) snapshotLocked() []Notification {
	snapshot := make([]Notification, len(m.items))
	copy(snapshot, m.items)
	return snapshot
}

func (m *Manager) listenersLocked() []Listener {
	listeners := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

// broadcast зовёт подписчиков вне блокировки: подписчик вправе дернуть
// методы менеджера из своего обработчика.
func broadcast(listeners []Listener, snapshot []Notification) {
	for _, l := range listeners {
		l(snapshot)
	}
}
