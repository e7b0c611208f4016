// internal/application/usecase/contact_usecase.go
package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	contactdom "storefront/internal/domain/contact"
)

// Mailer delivers one plain-text message.
type Mailer interface {
	Send(ctx context.Context, from, to, replyTo, subject, body string) error
}

type ContactUsecase struct {
	mailer Mailer
	from   string
	to     string
	clock  Clock
	log    *zap.Logger
}

// NewContactUsecase accepts a nil mailer; submissions are then only logged.
func NewContactUsecase(mailer Mailer, from, to string, log *zap.Logger) *ContactUsecase {
	return NewContactUsecaseWithClock(mailer, from, to, log, systemClock{})
}

func NewContactUsecaseWithClock(mailer Mailer, from, to string, log *zap.Logger, clock Clock) *ContactUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &ContactUsecase{mailer: mailer, from: from, to: to, clock: clock, log: log.Named("contact_usecase")}
}

func (uc *ContactUsecase) Submit(ctx context.Context, name, email, message string) (contactdom.Message, error) {
	m, err := contactdom.New(name, email, message, uc.clock.Now().UTC())
	if err != nil {
		return contactdom.Message{}, err
	}

	if uc.mailer == nil {
		uc.log.Info("contact message received (mail disabled)",
			zap.String("name", m.Name),
			zap.String("email", m.Email),
			zap.Int("length", len(m.Message)),
		)
		return m, nil
	}

	if err := uc.mailer.Send(ctx, uc.from, uc.to, m.Email, m.Subject(), m.Body()); err != nil {
		return contactdom.Message{}, fmt.Errorf("contact_usecase: send: %w", err)
	}
	uc.log.Info("contact message sent", zap.String("email", m.Email))
	return m, nil
}
