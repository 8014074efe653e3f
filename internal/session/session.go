package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pinkhub/backend/internal/catalog"
	"pinkhub/backend/internal/hub"
)

// State is a point-in-time copy of everything a presentation layer renders.
type State struct {
	ID        uuid.UUID            `json:"id"`
	Filter    catalog.FilterState  `json:"filter"`
	MenuOpen  bool                 `json:"menuOpen"`
	Draft     Draft                `json:"draft"`
	Message   Message              `json:"message"`
	Games     []catalog.GameRecord `json:"games"`
	Genres    []string             `json:"genres"`
	Platforms []string             `json:"platforms"`
}

// Session holds one visitor's interaction state. Every method is safe for
// concurrent use; the clear timer fires on its own goroutine.
type Session struct {
	id     uuid.UUID
	engine *catalog.Engine
	cfg    Config

	mu         sync.Mutex
	filter     catalog.FilterState
	menuOpen   bool
	draft      Draft
	message    Message
	clearTimer Timer
	generation uint64
	lastSeen   time.Time
	ended      bool
}

// New returns a session with default state.
func New(id uuid.UUID, engine *catalog.Engine, cfg Config) *Session {
	cfg = cfg.withDefaults()
	return &Session{
		id:       id,
		engine:   engine,
		cfg:      cfg,
		filter:   catalog.DefaultFilter(),
		lastSeen: cfg.Now(),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

// State returns a snapshot including the derived view.
func (s *Session) State() State {
	s.mu.Lock()
	s.touch()
	st := State{
		ID:       s.id,
		Filter:   s.filter,
		MenuOpen: s.menuOpen,
		Draft:    s.draft,
		Message:  s.message,
	}
	s.mu.Unlock()

	st.Games = s.engine.View(st.Filter)
	st.Genres = s.engine.Catalog().Genres()
	st.Platforms = s.engine.Catalog().Platforms()
	return st
}

// Filter returns the current filter state.
func (s *Session) Filter() catalog.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Session) SetSearchTerm(term string) {
	s.update(func() { s.filter.SearchTerm = term })
}

func (s *Session) SetSelectedGenre(genre string) {
	s.update(func() { s.filter.SelectedGenre = genre })
}

func (s *Session) SetSelectedPlatform(platform string) {
	s.update(func() { s.filter.SelectedPlatform = platform })
}

func (s *Session) SetSortKey(key catalog.SortKey) {
	s.update(func() { s.filter.SortKey = key })
}

// ToggleMenu flips the menu flag and returns the new value.
func (s *Session) ToggleMenu() bool {
	var open bool
	s.update(func() {
		s.menuOpen = !s.menuOpen
		open = s.menuOpen
	})
	return open
}

// CloseMenu closes the menu, as following a navigation link does.
func (s *Session) CloseMenu() {
	s.update(func() { s.menuOpen = false })
}

func (s *Session) MenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menuOpen
}

// ClearFilters resets search, genre and platform in one step. The sort key
// is left as is.
func (s *Session) ClearFilters() {
	s.update(func() {
		def := catalog.DefaultFilter()
		s.filter.SearchTerm = def.SearchTerm
		s.filter.SelectedGenre = def.SelectedGenre
		s.filter.SelectedPlatform = def.SelectedPlatform
	})
}

// LastSeen reports when the session was last used.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// End cancels the pending message clear. Further timer firings are ignored.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.ended = true
	s.cancelClearLocked()
}

func (s *Session) update(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	fn()
}

func (s *Session) touch() {
	s.lastSeen = s.cfg.Now()
}

// endWith ends the session and publishes its ended event under the same
// lock, so no message event can follow it.
func (s *Session) endWith(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.publishLocked(hub.EventEnded, map[string]string{"reason": reason})
	s.ended = true
	s.cancelClearLocked()
}

// publishLocked must be called with s.mu held. Subscribers then see events in
// the same order the state changed.
func (s *Session) publishLocked(eventType string, payload any) {
	if s.cfg.Broadcaster == nil || s.ended {
		return
	}
	s.cfg.Broadcaster.Broadcast(s.id, hub.Event{Type: eventType, Payload: payload})
}
