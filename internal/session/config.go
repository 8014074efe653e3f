package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pinkhub/backend/internal/hub"
)

// DefaultClearDelay is how long an accepted-submission message stays visible.
const DefaultClearDelay = 5 * time.Second

// Timer is a pending one-shot callback.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Broadcaster receives session events. *hub.Hub satisfies it. Broadcast is
// called with the session locked: it must not block or call back into the
// session.
type Broadcaster interface {
	Broadcast(sessionID uuid.UUID, event hub.Event)
}

// SubscriberCounter reports live event-stream subscribers of a session.
// *hub.Hub satisfies it.
type SubscriberCounter interface {
	Subscribers(sessionID uuid.UUID) int
}

// Config carries the collaborators and tunables of sessions and the manager.
// Zero fields take defaults.
type Config struct {
	ClearDelay  time.Duration
	IdleTimeout time.Duration
	AfterFunc   AfterFunc
	Now         func() time.Time
	Broadcaster Broadcaster
	Logger      *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.ClearDelay <= 0 {
		c.ClearDelay = DefaultClearDelay
	}
	if c.AfterFunc == nil {
		c.AfterFunc = realAfterFunc
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
