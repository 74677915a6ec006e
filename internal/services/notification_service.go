package services

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/models"
	"github.com/recruitsss/recruitsss-backend/internal/notify"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationService records workflow notifications and hands email
// delivery to the mailer queue. Publishing is best effort: a queue outage
// is logged and the triggering request still succeeds.
type NotificationService struct {
	db        *gorm.DB
	publisher notify.Publisher
}

func NewNotificationService(db *gorm.DB, publisher notify.Publisher) *NotificationService {
	return &NotificationService{db: db, publisher: publisher}
}

// Create appends a notification row and, for the EMAIL channel, enqueues
// delivery to the worker.
func (s *NotificationService) Create(user *models.User, typ, channel, title, message string, data map[string]interface{}) {
	n := models.Notification{
		ID:      uuid.New(),
		UserID:  user.ID,
		Type:    typ,
		Channel: channel,
		Title:   title,
		Message: message,
	}
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			n.Data = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(&n).Error; err != nil {
		slog.Error("failed to record notification", "type", typ, "user_id", user.ID, "error", err)
		return
	}

	if channel != models.ChannelEmail || s.publisher == nil {
		return
	}
	err := s.publisher.PublishEmail(notify.EmailMessage{
		NotificationID: n.ID,
		To:             user.Email,
		Subject:        title,
		Body:           message,
	})
	if err != nil {
		slog.Error("failed to enqueue notification email", "notification_id", n.ID, "error", err)
	}
}

func (s *NotificationService) NotifyAccountCreated(user *models.User) {
	s.Create(user, models.NotificationAccountCreated, models.ChannelEmail,
		"Bienvenue sur Recruitsss!",
		fmt.Sprintf("Bonjour %s, votre compte %s a bien été créé.", user.FirstName, user.Role),
		nil)
}

func (s *NotificationService) NotifyApplicationSubmitted(recruiter *models.User, candidateName, jobTitle string) {
	s.Create(recruiter, models.NotificationApplicationSubmitted, models.ChannelEmail,
		fmt.Sprintf("Nouvelle candidature pour %s", jobTitle),
		fmt.Sprintf("%s a postulé à votre offre \"%s\".", candidateName, jobTitle),
		map[string]interface{}{"job_title": jobTitle})
}

var applicationStatusMessages = map[string]string{
	models.ApplicationShortlisted:        "Votre candidature a été présélectionnée",
	models.ApplicationInterviewScheduled: "Un entretien a été programmé",
	models.ApplicationAccepted:           "Félicitations! Votre candidature a été acceptée",
	models.ApplicationRejected:           "Votre candidature n'a pas été retenue cette fois",
}

func (s *NotificationService) NotifyApplicationStatus(candidate *models.User, jobTitle, status string) {
	subject, ok := applicationStatusMessages[status]
	if !ok {
		subject = "Mise à jour de votre candidature"
	}
	s.Create(candidate, models.NotificationApplicationStatus, models.ChannelEmail,
		subject,
		fmt.Sprintf("%s pour l'offre \"%s\".", subject, jobTitle),
		map[string]interface{}{"job_title": jobTitle, "status": status})
}

func (s *NotificationService) NotifyJobPublished(recruiter *models.User, jobTitle string) {
	s.Create(recruiter, models.NotificationNewMessage, models.ChannelEmail,
		fmt.Sprintf("Votre offre \"%s\" est maintenant publiée", jobTitle),
		fmt.Sprintf("Votre offre \"%s\" est visible par les candidats.", jobTitle),
		map[string]interface{}{"job_title": jobTitle})
}

func (s *NotificationService) NotifyPaymentStatus(recruiter *models.User, status string) {
	subjects := map[string]string{
		models.PaymentCompleted: "Votre paiement a été confirmé",
		models.PaymentFailed:    "Votre paiement a été rejeté",
		models.PaymentRefunded:  "Votre paiement a été remboursé",
	}
	subject, ok := subjects[status]
	if !ok {
		return
	}
	s.Create(recruiter, models.NotificationPaymentReminder, models.ChannelEmail,
		subject,
		subject+".",
		map[string]interface{}{"status": status})
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(a *actor.Actor, page, limit int) ([]models.Notification, int64, error) {
	var items []models.Notification
	var total int64

	q := s.db.Model(&models.Notification{}).Where("user_id = ?", a.ID())
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&items).Error
	return items, total, err
}

// MarkRead flips the read flag on the caller's own notification.
func (s *NotificationService) MarkRead(a *actor.Actor, id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	if err := s.db.Where("id = ? AND user_id = ?", id, a.ID()).First(&n).Error; err != nil {
		return nil, ErrNotFound
	}
	if !n.Read {
		if err := s.db.Model(&n).Update("read", true).Error; err != nil {
			return nil, err
		}
		n.Read = true
	}
	return &n, nil
}

// MarkAllRead marks every unread notification of the caller and returns
// the number affected.
func (s *NotificationService) MarkAllRead(a *actor.Actor) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", a.ID()).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *NotificationService) UnreadCount(a *actor.Actor) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", a.ID()).
		Count(&count).Error
	return count, err
}
