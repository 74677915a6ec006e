package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

type PaymentService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewPaymentService(db *gorm.DB, notifications *NotificationService) *PaymentService {
	return &PaymentService{db: db, notifications: notifications}
}

func validPaymentMethod(m string) bool {
	switch m {
	case models.PaymentMethodManual, models.PaymentMethodMobileMoney,
		models.PaymentMethodStripe, models.PaymentMethodWhatsApp:
		return true
	}
	return false
}

// Create opens a pending subscription payment for the calling recruiter.
func (s *PaymentService) Create(a *actor.Actor, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	if !a.IsRecruiter() {
		return nil, ErrForbidden
	}
	if req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}
	if !validPaymentMethod(req.Method) {
		return nil, ErrInvalidPaymentMethod
	}

	p := &models.Payment{
		RecruiterID:       a.ID(),
		Amount:            req.Amount,
		Currency:          req.Currency,
		Method:            req.Method,
		Status:            models.PaymentPending,
		ExternalReference: req.ExternalReference,
		PaymentProofURL:   req.PaymentProofURL,
		Notes:             req.Notes,
	}
	if p.Currency == "" {
		p.Currency = "XOF"
	}
	if err := s.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns a payment visible to the caller: its recruiter or an admin.
func (s *PaymentService) Get(a *actor.Actor, id string) (*models.Payment, error) {
	var p models.Payment
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !a.IsAdmin() && !(a.IsRecruiter() && p.RecruiterID == a.ID()) {
		return nil, ErrNotFound
	}
	return &p, nil
}

// List returns all payments for admins, the caller's own for recruiters.
func (s *PaymentService) List(a *actor.Actor, page, limit int) ([]models.Payment, *dto.ListMeta, error) {
	page, limit = dto.Pagination(page, limit)
	q := s.db.Model(&models.Payment{})

	switch {
	case a.IsAdmin():
	case a.IsRecruiter():
		q = q.Where("recruiter_id = ?", a.ID())
	default:
		return nil, nil, ErrForbidden
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	var payments []models.Payment
	if err := q.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&payments).Error; err != nil {
		return nil, nil, err
	}
	return payments, &dto.ListMeta{Total: total, Page: page, Limit: limit}, nil
}

func (s *PaymentService) adminPayment(a *actor.Actor, id string) (*models.Payment, error) {
	if !a.IsAdmin() {
		return nil, ErrForbidden
	}
	var p models.Payment
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Verify completes a pending payment and activates the recruiter's
// subscription, both written in one transaction.
func (s *PaymentService) Verify(a *actor.Actor, id string, req *dto.VerifyPaymentRequest) (*models.Payment, error) {
	p, err := s.adminPayment(a, id)
	if err != nil {
		return nil, err
	}
	if err := p.MarkAsPaid(req.TransactionID, time.Now()); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return tx.Model(&models.Recruiter{}).Where("id = ?", p.RecruiterID).Updates(map[string]interface{}{
			"payment_status":           models.PaymentStatusActive,
			"subscription_valid_until": p.ValidUntil,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyRecruiter(p)
	return p, nil
}

// Reject fails a pending payment. The recruiter keeps whatever
// subscription standing they already had.
func (s *PaymentService) Reject(a *actor.Actor, id string, reason string) (*models.Payment, error) {
	p, err := s.adminPayment(a, id)
	if err != nil {
		return nil, err
	}
	if err := p.MarkAsFailed(reason); err != nil {
		return nil, err
	}
	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	s.notifyRecruiter(p)
	return p, nil
}

// Refund reverses a completed payment and suspends the recruiter.
func (s *PaymentService) Refund(a *actor.Actor, id string, reason string) (*models.Payment, error) {
	p, err := s.adminPayment(a, id)
	if err != nil {
		return nil, err
	}
	if err := p.Refund(reason, time.Now()); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return tx.Model(&models.Recruiter{}).Where("id = ?", p.RecruiterID).
			Update("payment_status", models.PaymentStatusSuspended).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyRecruiter(p)
	return p, nil
}

func (s *PaymentService) notifyRecruiter(p *models.Payment) {
	var u models.User
	if err := s.db.First(&u, "id = ?", p.RecruiterID).Error; err != nil {
		return
	}
	s.notifications.NotifyPaymentStatus(&u, p.Status)
}
