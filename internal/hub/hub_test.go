package hub

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesOnlySessionClients(t *testing.T) {
	h := NewHub(nil)
	a, b := uuid.New(), uuid.New()
	ca, cb := NewClient(1), NewClient(1)
	h.Subscribe(a, ca)
	h.Subscribe(b, cb)

	h.Broadcast(a, Event{Type: EventMessage, Payload: map[string]string{"text": "hola"}})

	require.Len(t, ca, 1)
	assert.Len(t, cb, 0)

	var ev struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(<-ca, &ev))
	assert.Equal(t, EventMessage, ev.Type)
	assert.Equal(t, "hola", ev.Payload["text"])
}

func TestBroadcastDropsForFullClient(t *testing.T) {
	var buf bytes.Buffer
	h := NewHub(slog.New(slog.NewTextHandler(&buf, nil)))
	id := uuid.New()
	c := NewClient(1)
	h.Subscribe(id, c)

	h.Broadcast(id, Event{Type: EventMessage})
	h.Broadcast(id, Event{Type: EventEnded})

	assert.Len(t, c, 1)
	assert.Contains(t, buf.String(), "dropping event for slow subscriber")
	assert.Contains(t, buf.String(), "type=ended")
}

func TestUnsubscribeClosesClient(t *testing.T) {
	h := NewHub(nil)
	id := uuid.New()
	c := NewClient(1)
	h.Subscribe(id, c)

	h.Unsubscribe(id, c)
	h.Unsubscribe(id, c)

	_, ok := <-c
	assert.False(t, ok)
	assert.Equal(t, 0, h.Subscribers(id))
}

func TestCloseDisconnectsAllClients(t *testing.T) {
	h := NewHub(nil)
	id := uuid.New()
	c1, c2 := NewClient(1), NewClient(1)
	h.Subscribe(id, c1)
	h.Subscribe(id, c2)
	require.Equal(t, 2, h.Subscribers(id))

	h.Close(id)

	_, ok1 := <-c1
	_, ok2 := <-c2
	assert.False(t, ok1)
	assert.False(t, ok2)
	assert.Equal(t, 0, h.Subscribers(id))

	// Unsubscribing after Close must not double-close.
	assert.NotPanics(t, func() { h.Unsubscribe(id, c1) })
}
