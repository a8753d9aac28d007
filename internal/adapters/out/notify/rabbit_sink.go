// Package notify delivers marketplace notifications to users. The primary
// implementation publishes to a RabbitMQ queue consumed by the push
// delivery service; SlogSink is a fallback for environments without a
// broker.
package notify

import (
	"context"
	"encoding/json"
	"errors"

	"freightbid/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrBrokerUnavailable is returned when the broker connection cannot be
// established or has been closed.
var ErrBrokerUnavailable = errors.New("notification broker is unavailable")

// notificationEnvelope is the wire format consumed by the push delivery
// service.
type notificationEnvelope struct {
	RecipientID string         `json:"recipient_id"`
	Kind        string         `json:"kind"`
	Message     string         `json:"message"`
	Data        map[string]any `json:"data,omitempty"`
}

// RabbitSink publishes notifications to a durable RabbitMQ queue.
type RabbitSink struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewRabbitSink dials the broker and declares the queue. The caller owns
// the sink and must Close it on shutdown.
func NewRabbitSink(url, queue string) (*RabbitSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Join(ErrBrokerUnavailable, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrBrokerUnavailable, err)
	}

	_, err = channel.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, errors.Join(ErrBrokerUnavailable, err)
	}

	return &RabbitSink{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

// Send publishes a persistent JSON message to the notification queue.
func (s *RabbitSink) Send(ctx context.Context, notification ports.Notification) error {
	body, err := json.Marshal(notificationEnvelope{
		RecipientID: notification.RecipientID.String(),
		Kind:        string(notification.Kind),
		Message:     notification.Message,
		Data:        notification.Data,
	})
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		"",      // exchange
		s.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Close releases the channel and connection.
func (s *RabbitSink) Close() error {
	chErr := s.channel.Close()
	connErr := s.conn.Close()
	return errors.Join(chErr, connErr)
}
