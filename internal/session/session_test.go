package session

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"pinkhub/backend/internal/catalog"
	"pinkhub/backend/internal/hub"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// fakeClock records scheduled callbacks; tests fire them by hand.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs a callback even if it was stopped, like a timer that had
// already started when Stop was called.
func (c *fakeClock) fire(i int) {
	c.mu.Lock()
	t := c.timers[i]
	c.mu.Unlock()
	t.fn()
}

func (c *fakeClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []hub.Event
	closed []uuid.UUID
}

func (b *recordingBroadcaster) Broadcast(_ uuid.UUID, ev hub.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

func (b *recordingBroadcaster) Close(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = append(b.closed, id)
}

func testEngine(t *testing.T) *catalog.Engine {
	t.Helper()
	c, err := catalog.New(catalog.DefaultRecords())
	require.NoError(t, err)
	return catalog.NewEngine(c, "es")
}

func newTestSession(t *testing.T) (*Session, *fakeClock, *recordingBroadcaster) {
	t.Helper()
	clock := &fakeClock{}
	b := &recordingBroadcaster{}
	s := New(uuid.New(), testEngine(t), Config{AfterFunc: clock.AfterFunc, Broadcaster: b})
	return s, clock, b
}

func TestNew_Defaults(t *testing.T) {
	s, _, _ := newTestSession(t)

	st := s.State()

	assert.Equal(t, catalog.FilterState{SelectedGenre: "Todos", SelectedPlatform: "Todas", SortKey: catalog.SortByRating}, st.Filter)
	assert.False(t, st.MenuOpen)
	assert.Equal(t, Draft{}, st.Draft)
	assert.True(t, st.Message.IsZero())
	assert.Len(t, st.Games, 8)
	assert.Equal(t, []string{"Switch", "PC", "PS5"}, st.Platforms)
}

func TestSetters_AreIndependent(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.SetSelectedGenre("RPG")
	s.SetSelectedPlatform("Switch")

	st := s.State()
	assert.Equal(t, "RPG", st.Filter.SelectedGenre)
	assert.Equal(t, "Switch", st.Filter.SelectedPlatform)
	assert.Empty(t, st.Games)
}

func TestState_ReflectsFilter(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.SetSearchTerm("final")
	st := s.State()

	require.Len(t, st.Games, 1)
	assert.Equal(t, "Final Fantasy XVI", st.Games[0].Title)
}

func TestClearFilters_KeepsSortKey(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.SetSearchTerm("star")
	s.SetSelectedGenre("RPG")
	s.SetSelectedPlatform("PC")
	s.SetSortKey(catalog.SortByTitle)

	s.ClearFilters()

	assert.Equal(t, catalog.FilterState{
		SearchTerm:       "",
		SelectedGenre:    catalog.AllGenres,
		SelectedPlatform: catalog.AllPlatforms,
		SortKey:          catalog.SortByTitle,
	}, s.Filter())
}

func TestMenu(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.True(t, s.ToggleMenu())
	assert.True(t, s.MenuOpen())
	assert.False(t, s.ToggleMenu())

	s.ToggleMenu()
	s.CloseMenu()
	assert.False(t, s.MenuOpen())
	s.CloseMenu()
	assert.False(t, s.MenuOpen())
}

func TestSetDraftField(t *testing.T) {
	s, _, _ := newTestSession(t)

	require.NoError(t, s.SetDraftField(FieldName, "Ana"))
	require.NoError(t, s.SetDraftField(FieldEmail, "ana@x.com"))
	assert.Equal(t, Draft{Name: "Ana", Email: "ana@x.com"}, s.Draft())

	err := s.SetDraftField("phone", "555")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, Draft{Name: "Ana", Email: "ana@x.com"}, s.Draft())
}

func TestSubmit_RejectsMissingName(t *testing.T) {
	s, clock, _ := newTestSession(t)
	require.NoError(t, s.SetDraftField(FieldEmail, "x@y.com"))

	outcome, msg := s.Submit()

	assert.Equal(t, Rejected, outcome)
	assert.Equal(t, MessageError, msg.Kind)
	assert.Equal(t, "Error: Por favor, introduce tu nombre y correo electrónico.", msg.Text)
	assert.Equal(t, Draft{Email: "x@y.com"}, s.Draft())
	assert.Equal(t, msg, s.Message())
	assert.Equal(t, 0, clock.count())
}

func TestSubmit_RejectsMissingEmail(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.SetDraftField(FieldName, "Ana"))

	outcome, _ := s.Submit()

	assert.Equal(t, Rejected, outcome)
	assert.Equal(t, Draft{Name: "Ana"}, s.Draft())
}

func TestSubmit_DoesNotCheckEmailFormat(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.SetDraftField(FieldName, "Ana"))
	require.NoError(t, s.SetDraftField(FieldEmail, "not an email"))

	outcome, _ := s.Submit()

	assert.Equal(t, Accepted, outcome)
}

func TestSubmit_AcceptsAndClearsAfterDelay(t *testing.T) {
	s, clock, b := newTestSession(t)
	require.NoError(t, s.SetDraftField(FieldName, "Ana"))
	require.NoError(t, s.SetDraftField(FieldEmail, "ana@x.com"))

	outcome, msg := s.Submit()

	assert.Equal(t, Accepted, outcome)
	assert.Equal(t, MessageSuccess, msg.Kind)
	assert.Contains(t, msg.Text, "Ana")
	assert.Equal(t, Draft{}, s.Draft())
	require.Equal(t, 1, clock.count())
	assert.Equal(t, 5*time.Second, clock.timers[0].delay)
	assert.Equal(t, msg, s.Message())

	clock.fire(0)

	assert.True(t, s.Message().IsZero())
	require.Len(t, b.events, 2)
	assert.Equal(t, hub.Event{Type: hub.EventMessage, Payload: msg}, b.events[0])
	assert.Equal(t, hub.Event{Type: hub.EventMessage, Payload: Message{}}, b.events[1])
}

func TestSubmit_StaleTimerNeverClearsNewerMessage(t *testing.T) {
	s, clock, _ := newTestSession(t)
	require.NoError(t, s.SetDraftField(FieldName, "Ana"))
	require.NoError(t, s.SetDraftField(FieldEmail, "ana@x.com"))
	s.Submit()

	require.NoError(t, s.SetDraftField(FieldName, "Bea"))
	require.NoError(t, s.SetDraftField(FieldEmail, "bea@x.com"))
	_, second := s.Submit()

	require.Equal(t, 2, clock.count())
	assert.True(t, clock.timers[0].stopped)

	clock.fire(0)
	assert.Equal(t, second, s.Message())
	assert.Contains(t, s.Message().Text, "Bea")

	clock.fire(1)
	assert.True(t, s.Message().IsZero())
}

func TestSubmit_RejectionCancelsPendingClear(t *testing.T) {
	s, clock, _ := newTestSession(t)
	require.NoError(t, s.SetDraftField(FieldName, "Ana"))
	require.NoError(t, s.SetDraftField(FieldEmail, "ana@x.com"))
	s.Submit()

	outcome, rejected := s.Submit()
	require.Equal(t, Rejected, outcome)
	assert.True(t, clock.timers[0].stopped)

	clock.fire(0)

	assert.Equal(t, rejected, s.Message())
}

func TestEnd_CancelsPendingClear(t *testing.T) {
	s, clock, _ := newTestSession(t)
	require.NoError(t, s.SetDraftField(FieldName, "Ana"))
	require.NoError(t, s.SetDraftField(FieldEmail, "ana@x.com"))
	_, msg := s.Submit()

	s.End()
	s.End()

	assert.True(t, clock.timers[0].stopped)
	clock.fire(0)
	assert.Equal(t, msg, s.Message())
}

func TestSubmit_WithRealTimer(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := New(uuid.New(), testEngine(t), Config{ClearDelay: 20 * time.Millisecond})
	require.NoError(t, s.SetDraftField(FieldName, "Ana"))
	require.NoError(t, s.SetDraftField(FieldEmail, "ana@x.com"))

	outcome, _ := s.Submit()
	require.Equal(t, Accepted, outcome)
	assert.False(t, s.Message().IsZero())

	require.Eventually(t, func() bool { return s.Message().IsZero() }, time.Second, 5*time.Millisecond)
}

func TestSession_ConcurrentUse(t *testing.T) {
	s := New(uuid.New(), testEngine(t), Config{ClearDelay: time.Millisecond})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.SetSearchTerm("s")
				s.ToggleMenu()
				_ = s.SetDraftField(FieldName, "Ana")
				_ = s.SetDraftField(FieldEmail, "ana@x.com")
				s.Submit()
				_ = s.State()
			}
		}(i)
	}
	wg.Wait()
	s.End()
}
