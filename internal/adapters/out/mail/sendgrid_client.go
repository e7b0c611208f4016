// internal/adapters/out/mail/sendgrid_client.go
package mail

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const senderName = "Storefront"

// sender is the part of *sendgrid.Client the mailer needs.
type sender interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// SendGridClient delivers plain-text mail through SendGrid.
type SendGridClient struct {
	client sender
	log    *zap.Logger
}

func NewSendGridClient(apiKey string, log *zap.Logger) (*SendGridClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("sendgrid: api key is empty")
	}
	return newSendGridClient(sendgrid.NewSendClient(apiKey), log), nil
}

func newSendGridClient(s sender, log *zap.Logger) *SendGridClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &SendGridClient{client: s, log: log.Named("sendgrid")}
}

// Send delivers one message. replyTo may be empty.
func (c *SendGridClient) Send(ctx context.Context, from, to, replyTo, subject, body string) error {
	msg, err := buildMessage(from, to, replyTo, subject, body)
	if err != nil {
		return err
	}

	resp, err := c.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid: send: %w", err)
	}
	if resp.StatusCode >= 400 {
		c.log.Warn("send rejected", zap.Int("status", resp.StatusCode), zap.String("body", resp.Body))
		return fmt.Errorf("sendgrid: send failed: status=%d", resp.StatusCode)
	}

	c.log.Info("mail sent", zap.Int("status", resp.StatusCode), zap.String("to", to), zap.String("subject", subject))
	return nil
}

func buildMessage(from, to, replyTo, subject, body string) (*sgmail.SGMailV3, error) {
	if strings.TrimSpace(from) == "" {
		return nil, errors.New("sendgrid: from address is empty")
	}
	if strings.TrimSpace(to) == "" {
		return nil, errors.New("sendgrid: to address is empty")
	}
	htmlBody := "<pre>" + html.EscapeString(body) + "</pre>"
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(senderName, from),
		subject,
		sgmail.NewEmail("", to),
		body,
		htmlBody,
	)
	if rt := strings.TrimSpace(replyTo); rt != "" {
		msg.SetReplyTo(sgmail.NewEmail("", rt))
	}
	return msg, nil
}
