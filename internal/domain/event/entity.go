// internal/domain/event/entity.go
package event

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrInvalidEvent = errors.New("event: invalid")

const (
	// KeyRaw marks a body forwarded as-is from the publish endpoint.
	KeyRaw = "api.event"
	// KeyCheckout marks a completed cart checkout.
	KeyCheckout = "cart.checked_out"
)

// Event is one message for the topic. Payload must be valid JSON.
type Event struct {
	Key     string
	Payload json.RawMessage
	Headers map[string]string
}

func (e Event) Validate() error {
	if len(e.Payload) == 0 || !json.Valid(e.Payload) {
		return ErrInvalidEvent
	}
	return nil
}

// Publisher writes events to the message topic.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
	Close() error
}
