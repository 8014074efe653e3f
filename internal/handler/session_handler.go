package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"pinkhub/backend/internal/catalog"
	"pinkhub/backend/internal/hub"
	"pinkhub/backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// region --- DTOs ---

// ValueInput carries the new value of a single state cell. An empty string
// is a valid value.
type ValueInput struct {
	Value *string `json:"value" binding:"required" example:"star"`
}

// SubmitResponse is the result of an interest form submission.
type SubmitResponse struct {
	Outcome session.Outcome `json:"outcome" example:"accepted"`
	Message session.Message `json:"message"`
	State   session.State   `json:"state"`
}

// endregion

// SessionHandler exposes interaction sessions and their event streams.
type SessionHandler struct {
	sessions *session.Manager
	hub      *hub.Hub
	logger   *slog.Logger
}

func NewSessionHandler(sessions *session.Manager, h *hub.Hub, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{sessions: sessions, hub: h, logger: logger}
}

func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.EndSession)

		sessions.PUT("/:id/search", h.SetSearchTerm)
		sessions.PUT("/:id/genre", h.SetGenre)
		sessions.PUT("/:id/platform", h.SetPlatform)
		sessions.PUT("/:id/sort", h.SetSort)
		sessions.POST("/:id/filters/clear", h.ClearFilters)

		sessions.POST("/:id/menu/toggle", h.ToggleMenu)
		sessions.POST("/:id/menu/close", h.CloseMenu)

		sessions.PUT("/:id/interest/:field", h.SetInterestField)
		sessions.POST("/:id/interest/submit", h.SubmitInterest)

		sessions.GET("/:id/events", h.Events)
	}
}

func (h *SessionHandler) lookup(c *gin.Context) (*session.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return nil, false
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	return s, true
}

func bindValue(c *gin.Context) (string, bool) {
	var input ValueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return *input.Value, true
}

// setCell is the shared body of the single-value setters.
func (h *SessionHandler) setCell(c *gin.Context, set func(*session.Session, string) error) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	value, ok := bindValue(c)
	if !ok {
		return
	}
	if err := set(s, value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// CreateSession godoc
// @Summary      Start a session
// @Description  Creates a browsing session with default filters, an empty interest form and no message.
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  session.State
// @Router       /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	c.JSON(http.StatusCreated, s.State())
}

// GetSession godoc
// @Summary      Get session state
// @Description  Returns filters, menu flag, draft, message, the derived view and the filter options.
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// EndSession godoc
// @Summary      End a session
// @Description  Discards the session, cancelling its pending message clear and closing its event streams.
// @Tags         sessions
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id} [delete]
func (h *SessionHandler) EndSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}
	if err := h.sessions.End(id); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SetSearchTerm godoc
// @Summary      Set the search term
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id     path  string      true  "Session ID"
// @Param        input  body  ValueInput  true  "Search term"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/search [put]
func (h *SessionHandler) SetSearchTerm(c *gin.Context) {
	h.setCell(c, func(s *session.Session, v string) error {
		s.SetSearchTerm(v)
		return nil
	})
}

// SetGenre godoc
// @Summary      Select a genre
// @Description  Todos removes the genre filter.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id     path  string      true  "Session ID"
// @Param        input  body  ValueInput  true  "Genre"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/genre [put]
func (h *SessionHandler) SetGenre(c *gin.Context) {
	h.setCell(c, func(s *session.Session, v string) error {
		s.SetSelectedGenre(v)
		return nil
	})
}

// SetPlatform godoc
// @Summary      Select a platform
// @Description  Todas removes the platform filter.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id     path  string      true  "Session ID"
// @Param        input  body  ValueInput  true  "Platform"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/platform [put]
func (h *SessionHandler) SetPlatform(c *gin.Context) {
	h.setCell(c, func(s *session.Session, v string) error {
		s.SetSelectedPlatform(v)
		return nil
	})
}

// SetSort godoc
// @Summary      Select the sort order
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id     path  string      true  "Session ID"
// @Param        input  body  ValueInput  true  "title, releaseYear or rating"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse "Unknown sort key"
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/sort [put]
func (h *SessionHandler) SetSort(c *gin.Context) {
	h.setCell(c, func(s *session.Session, v string) error {
		key, err := catalog.ParseSortKey(v)
		if err != nil {
			return err
		}
		s.SetSortKey(key)
		return nil
	})
}

// ClearFilters godoc
// @Summary      Clear filters
// @Description  Resets search, genre and platform. The sort order is kept.
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  session.State
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/filters/clear [post]
func (h *SessionHandler) ClearFilters(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	s.ClearFilters()
	c.JSON(http.StatusOK, s.State())
}

// ToggleMenu godoc
// @Summary      Toggle the navigation menu
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  session.State
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/menu/toggle [post]
func (h *SessionHandler) ToggleMenu(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	s.ToggleMenu()
	c.JSON(http.StatusOK, s.State())
}

// CloseMenu godoc
// @Summary      Close the navigation menu
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  session.State
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/menu/close [post]
func (h *SessionHandler) CloseMenu(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	s.CloseMenu()
	c.JSON(http.StatusOK, s.State())
}

// SetInterestField godoc
// @Summary      Edit the interest form
// @Tags         interest
// @Accept       json
// @Produce      json
// @Param        id     path  string      true  "Session ID"
// @Param        field  path  string      true  "name or email"
// @Param        input  body  ValueInput  true  "Field value"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse "Unknown field"
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/interest/{field} [put]
func (h *SessionHandler) SetInterestField(c *gin.Context) {
	field := c.Param("field")
	h.setCell(c, func(s *session.Session, v string) error {
		return s.SetDraftField(field, v)
	})
}

// SubmitInterest godoc
// @Summary      Submit the interest form
// @Description  Accepts the draft when name and email are present, clearing it and scheduling the message to disappear. A rejected draft is kept.
// @Tags         interest
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  SubmitResponse "Accepted"
// @Failure      422  {object}  SubmitResponse "Rejected"
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/interest/submit [post]
func (h *SessionHandler) SubmitInterest(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	outcome, msg := s.Submit()
	status := http.StatusOK
	if outcome == session.Rejected {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, SubmitResponse{Outcome: outcome, Message: msg, State: s.State()})
}

// Events godoc
// @Summary      Stream session events
// @Description  Server-Sent Events. The first event carries the current message; later events report message changes and the end of the session. A session with an open stream is never expired as idle.
// @Tags         sessions
// @Produce      text/event-stream
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  hub.Event
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{id}/events [get]
func (h *SessionHandler) Events(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	client := hub.NewClient(16)
	h.hub.Subscribe(s.ID(), client)
	defer h.hub.Unsubscribe(s.ID(), client)
	// The session may have ended between lookup and Subscribe.
	if _, err := h.sessions.Get(s.ID()); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent("session", hub.Event{Type: hub.EventMessage, Payload: s.Message()})
	c.Writer.Flush()

	h.logger.Debug("event stream opened", "session", s.ID().String())
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("session", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
	h.logger.Debug("event stream closed", "session", s.ID().String())
}
