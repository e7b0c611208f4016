package kafka

import (
	"context"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventdom "storefront/internal/domain/event"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestEventPublisher_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := newEventPublisher(fw, "my-topic", nil)

	err := p.Publish(context.Background(), eventdom.Event{
		Key:     eventdom.KeyCheckout,
		Payload: []byte(`{"cartId":"c1"}`),
		Headers: map[string]string{"cartId": "c1"},
	})
	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)
	m := fw.msgs[0]
	assert.Equal(t, eventdom.KeyCheckout, string(m.Key))
	assert.JSONEq(t, `{"cartId":"c1"}`, string(m.Value))

	headers := map[string]string{}
	for _, h := range m.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "c1", headers["cartId"])
	assert.Equal(t, "application/json", headers["content-type"])

	require.NoError(t, p.Close())
	assert.True(t, fw.closed)
}

func TestEventPublisher_Errors(t *testing.T) {
	boom := errors.New("leader not available")
	fw := &fakeWriter{err: boom}
	p := newEventPublisher(fw, "t", nil)

	err := p.Publish(context.Background(), eventdom.Event{Payload: []byte(`{}`)})
	assert.ErrorIs(t, err, boom)

	err = p.Publish(context.Background(), eventdom.Event{Payload: []byte(`{oops`)})
	assert.ErrorIs(t, err, eventdom.ErrInvalidEvent)

	assert.NoError(t, p.Publish(context.Background()))
}

func TestNewEventPublisher_Validates(t *testing.T) {
	_, err := NewEventPublisher(Config{Topic: "t"}, nil)
	assert.Error(t, err)
	_, err = NewEventPublisher(Config{Brokers: []string{"localhost:9092"}}, nil)
	assert.Error(t, err)

	p, err := NewEventPublisher(Config{Brokers: []string{"localhost:9092"}, Topic: "t", ClientID: "my-app"}, nil)
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
