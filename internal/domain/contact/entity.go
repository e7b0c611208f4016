// internal/domain/contact/entity.go
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

var ErrInvalidMessage = errors.New("contact: invalid message")

// Message is a contact-form submission.
type Message struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

func New(name, email, body string, now time.Time) (Message, error) {
	m := Message{
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		Message:    strings.TrimSpace(body),
		ReceivedAt: now,
	}
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return Message{}, ErrInvalidMessage
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return Message{}, fmt.Errorf("%w: email: %v", ErrInvalidMessage, err)
	}
	return m, nil
}

// Subject is the mail subject line for the support inbox.
func (m Message) Subject() string {
	return fmt.Sprintf("[contact] message from %s", m.Name)
}

// Body renders the plain-text mail body.
func (m Message) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\n", m.Email)
	fmt.Fprintf(&b, "Received: %s\n\n", m.ReceivedAt.UTC().Format(time.RFC3339))
	b.WriteString(m.Message)
	b.WriteString("\n")
	return b.String()
}
