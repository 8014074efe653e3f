package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"pinkhub/backend/internal/catalog"
)

var ErrSessionNotFound = errors.New("session not found")

// Closer is notified when a session ends so it can drop subscribers.
// *hub.Hub satisfies it.
type Closer interface {
	Close(sessionID uuid.UUID)
}

// Manager owns the live sessions.
type Manager struct {
	engine *catalog.Engine
	cfg    Config

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager returns an empty manager. Sessions it creates share engine
// and cfg.
func NewManager(engine *catalog.Engine, cfg Config) *Manager {
	return &Manager{
		engine:   engine,
		cfg:      cfg.withDefaults(),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Engine returns the filter engine shared by all sessions.
func (m *Manager) Engine() *catalog.Engine { return m.engine }

// Create starts a session with default state.
func (m *Manager) Create() *Session {
	s := New(uuid.New(), m.engine, m.cfg)

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.cfg.Logger.Info("session created", "session", s.id.String())
	return s
}

// Get looks up a live session.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// End discards a session, cancelling its timer and disconnecting its
// subscribers.
func (m *Manager) End(id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	m.finish(s, "ended")
	return nil
}

// Sweep ends sessions idle for longer than the idle timeout and returns how
// many were removed. Sessions with event-stream subscribers are kept. A zero
// timeout disables expiry.
func (m *Manager) Sweep(now time.Time) int {
	if m.cfg.IdleTimeout <= 0 {
		return 0
	}

	counter, _ := m.cfg.Broadcaster.(SubscriberCounter)

	var expired []*Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if counter != nil && counter.Subscribers(id) > 0 {
			// An open event stream counts as activity.
			s.update(func() {})
			continue
		}
		if now.Sub(s.LastSeen()) > m.cfg.IdleTimeout {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		m.finish(s, "expired")
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(m.cfg.Now()); n > 0 {
				m.cfg.Logger.Info("expired idle sessions", "count", n)
			}
		}
	}
}

// Shutdown ends every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, s := range all {
		m.finish(s, "shutdown")
	}
}

func (m *Manager) finish(s *Session, reason string) {
	s.endWith(reason)
	if c, ok := m.cfg.Broadcaster.(Closer); ok {
		c.Close(s.id)
	}
	m.cfg.Logger.Info("session closed", "session", s.id.String(), "reason", reason)
}
