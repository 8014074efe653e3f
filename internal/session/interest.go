package session

import (
	"errors"
	"fmt"

	"pinkhub/backend/internal/hub"
)

var ErrUnknownField = errors.New("unknown interest form field")

// Interest form fields.
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// Draft is the interest form being edited.
type Draft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is the status line under the interest form. The zero value means
// nothing is shown.
type Message struct {
	Kind MessageKind `json:"kind,omitempty"`
	Text string      `json:"text"`
}

func (m Message) IsZero() bool { return m == Message{} }

const missingFieldsText = "Error: Por favor, introduce tu nombre y correo electrónico."

func thanksText(name string) string {
	return fmt.Sprintf("¡Gracias, %s! Estarás al tanto de todas las novedades.", name)
}

// Outcome is the result of a submission.
type Outcome string

const (
	Accepted Outcome = "accepted"
	Rejected Outcome = "rejected"
)

// SetDraftField replaces one field of the draft.
func (s *Session) SetDraftField(field, value string) error {
	var err error
	s.update(func() {
		switch field {
		case FieldName:
			s.draft.Name = value
		case FieldEmail:
			s.draft.Email = value
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	})
	return err
}

// Draft returns the current draft.
func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Message returns the current status message.
func (s *Session) Message() Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Submit validates the draft. A rejected draft is kept and gets an error
// message; an accepted one is cleared and its thank-you message is removed
// after the configured delay. Any pending clear from an earlier submission
// is cancelled first.
func (s *Session) Submit() (Outcome, Message) {
	s.mu.Lock()
	s.touch()
	s.cancelClearLocked()

	var outcome Outcome
	if s.draft.Name == "" || s.draft.Email == "" {
		outcome = Rejected
		s.message = Message{Kind: MessageError, Text: missingFieldsText}
	} else {
		outcome = Accepted
		s.message = Message{Kind: MessageSuccess, Text: thanksText(s.draft.Name)}
		s.draft = Draft{}
		if !s.ended {
			s.scheduleClearLocked()
		}
	}
	msg := s.message
	s.publishLocked(hub.EventMessage, msg)
	s.mu.Unlock()

	s.cfg.Logger.Debug("interest form submitted", "session", s.id.String(), "outcome", string(outcome))
	return outcome, msg
}

func (s *Session) scheduleClearLocked() {
	gen := s.generation
	s.clearTimer = s.cfg.AfterFunc(s.cfg.ClearDelay, func() { s.clearMessage(gen) })
}

// cancelClearLocked stops the pending timer and invalidates any firing that
// already started.
func (s *Session) cancelClearLocked() {
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
	s.generation++
}

func (s *Session) clearMessage(gen uint64) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.clearTimer = nil
	s.message = Message{}
	s.publishLocked(hub.EventMessage, s.message)
	s.mu.Unlock()
}
