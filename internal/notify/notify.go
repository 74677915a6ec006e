// Package notify hands notification emails to the out-of-process mailer
// over RabbitMQ. Publishing is fire-and-forget: the HTTP request path never
// blocks on, or fails because of, delivery.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const (
	Exchange   = "notifications"
	EmailQueue = "notification.email"
	RoutingKey = "email"
)

// EmailMessage is the JSON payload handed to the mailer worker.
type EmailMessage struct {
	NotificationID uuid.UUID `json:"notification_id"`
	To             string    `json:"to"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
}

// Publisher is what the notification service needs from the queue.
type Publisher interface {
	PublishEmail(msg EmailMessage) error
}

// Connect dials RabbitMQ with retries.
func Connect(url string, retries int, delay time.Duration) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	for range retries {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("notify: connect rabbitmq: %w", err)
}

// SetupChannel declares the notifications exchange and the email queue.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("notify: open channel: %w", err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("notify: set qos: %w", err)
	}

	if err := ch.ExchangeDeclare(Exchange, "direct", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("notify: declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(EmailQueue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("notify: declare queue: %w", err)
	}
	if err := ch.QueueBind(EmailQueue, RoutingKey, Exchange, false, nil); err != nil {
		return nil, fmt.Errorf("notify: bind queue: %w", err)
	}
	return ch, nil
}

// AMQPPublisher publishes persistent JSON messages to the email queue.
type AMQPPublisher struct {
	ch *amqp.Channel
}

func NewAMQPPublisher(ch *amqp.Channel) *AMQPPublisher {
	return &AMQPPublisher{ch: ch}
}

func (p *AMQPPublisher) PublishEmail(msg EmailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("notify: marshal message: %w", err)
	}
	err = p.ch.Publish(Exchange, RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return fmt.Errorf("notify: publish: %w", err)
	}
	return nil
}
