package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/recruitsss/recruitsss-backend/internal/models"
	"github.com/recruitsss/recruitsss-backend/internal/notify"
	"github.com/streadway/amqp"
	"gorm.io/gorm"
)

// Sender consumes queued notification emails, delivers them over SMTP and
// records the outcome on the notification row. Delivery failures are
// recorded, not retried.
type Sender struct {
	db        *gorm.DB
	transport Transport
}

func NewSender(db *gorm.DB, transport Transport) *Sender {
	return &Sender{db: db, transport: transport}
}

// Run consumes the email queue until the context is cancelled.
func (s *Sender) Run(ctx context.Context, ch *amqp.Channel) error {
	deliveries, err := ch.Consume(notify.EmailQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("mailer: consume queue: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("mailer: delivery channel closed")
			}
			if err := s.handle(d.Body); err != nil {
				slog.Error("email delivery failed", "error", err)
			}
			if err := d.Ack(false); err != nil {
				slog.Error("failed to ack delivery", "error", err)
			}
		}
	}
}

func (s *Sender) handle(body []byte) error {
	var msg notify.EmailMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("mailer: decode message: %w", err)
	}

	if err := s.send(msg); err != nil {
		s.db.Model(&models.Notification{}).
			Where("id = ?", msg.NotificationID).
			Update("error_message", err.Error())
		return err
	}

	now := time.Now()
	return s.db.Model(&models.Notification{}).
		Where("id = ?", msg.NotificationID).
		Updates(map[string]interface{}{"sent": true, "sent_at": now}).Error
}

func (s *Sender) send(msg notify.EmailMessage) error {
	client, err := s.transport.Connect()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.From()); err != nil {
		return fmt.Errorf("mailer: MAIL FROM: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("mailer: RCPT TO: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: DATA: %w", err)
	}

	payload := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		s.transport.From(), msg.To, msg.Subject, msg.Body)
	if _, err := w.Write([]byte(payload)); err != nil {
		w.Close()
		return fmt.Errorf("mailer: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: close body: %w", err)
	}
	return client.Quit()
}
