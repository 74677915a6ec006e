package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification types.
const (
	NotificationAccountCreated       = "ACCOUNT_CREATED"
	NotificationApplicationSubmitted = "APPLICATION_SUBMITTED"
	NotificationApplicationStatus    = "APPLICATION_STATUS_CHANGED"
	NotificationNewMessage           = "NEW_MESSAGE"
	NotificationJobMatch             = "JOB_MATCH"
	NotificationPasswordReset        = "PASSWORD_RESET"
	NotificationPaymentReminder      = "PAYMENT_REMINDER"
)

// Notification channels.
const (
	ChannelEmail    = "EMAIL"
	ChannelWhatsApp = "WHATSAPP"
	ChannelInApp    = "IN_APP"
)

// Notification is an append-only record of a message sent to a user.
// Delivery happens out of process; the worker flips sent/sent_at or
// records error_message, the core only ever toggles the read flag.
type Notification struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         string         `gorm:"size:50;not null;index" json:"type"`
	Channel      string         `gorm:"size:20;not null" json:"channel"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Message      string         `gorm:"type:text;not null" json:"message"`
	Data         datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"data"`
	Read         bool           `gorm:"default:false;index" json:"read"`
	Sent         bool           `gorm:"default:false" json:"sent"`
	SentAt       *time.Time     `json:"sent_at,omitempty"`
	ErrorMessage string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	User         User           `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
