// internal/application/usecase/event_usecase.go
package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	eventdom "storefront/internal/domain/event"
)

var ErrEventInvalidBody = errors.New("event_usecase: body is not valid JSON")

// EventUsecase forwards raw request bodies to the topic.
type EventUsecase struct {
	publisher eventdom.Publisher
	log       *zap.Logger
}

func NewEventUsecase(p eventdom.Publisher, log *zap.Logger) *EventUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventUsecase{publisher: p, log: log.Named("event_usecase")}
}

// Publish validates body and sends it. Only an invalid body is an error;
// delivery failures are logged.
func (uc *EventUsecase) Publish(ctx context.Context, body []byte, headers map[string]string) error {
	ev := eventdom.Event{Key: eventdom.KeyRaw, Payload: json.RawMessage(body), Headers: headers}
	if err := ev.Validate(); err != nil {
		return ErrEventInvalidBody
	}
	if uc.publisher == nil {
		uc.log.Warn("publisher not configured; event dropped", zap.Int("bytes", len(body)))
		return nil
	}
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		uc.log.Error("publish failed", zap.Int("bytes", len(body)), zap.Error(err))
		return nil
	}
	uc.log.Debug("published", zap.Int("bytes", len(body)))
	return nil
}
