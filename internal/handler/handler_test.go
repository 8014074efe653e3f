package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pinkhub/backend/internal/catalog"
	"pinkhub/backend/internal/database"
	"pinkhub/backend/internal/hub"
	"pinkhub/backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type manualTimers struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (m *manualTimers) AfterFunc(_ time.Duration, f func()) session.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{fn: f}
	m.timers = append(m.timers, t)
	return t
}

func (m *manualTimers) fireLast() {
	m.mu.Lock()
	t := m.timers[len(m.timers)-1]
	m.mu.Unlock()
	t.fn()
}

type testEnv struct {
	router   *gin.Engine
	sessions *session.Manager
	hub      *hub.Hub
	timers   *manualTimers
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:", io.Discard)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})

	c, err := catalog.New(catalog.DefaultRecords())
	require.NoError(t, err)
	engine := catalog.NewEngine(c, "es")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := hub.NewHub(logger)
	timers := &manualTimers{}
	sessions := session.NewManager(engine, session.Config{
		AfterFunc:   timers.AfterFunc,
		Broadcaster: h,
		Logger:      logger,
	})
	t.Cleanup(sessions.Shutdown)

	router := NewRouter(NewCatalogHandler(engine), NewSessionHandler(sessions, h, logger), logger)
	return &testEnv{router: router, sessions: sessions, hub: h, timers: timers}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func value(v string) map[string]string { return map[string]string{"value": v} }
