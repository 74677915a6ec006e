package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Payment methods.
const (
	PaymentMethodManual      = "MANUAL"
	PaymentMethodMobileMoney = "MOBILE_MONEY"
	PaymentMethodStripe      = "STRIPE"
	PaymentMethodWhatsApp    = "WHATSAPP_BUSINESS"
)

// Payment statuses.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

var (
	ErrPaymentNotPending   = errors.New("payment is not pending")
	ErrPaymentNotCompleted = errors.New("only completed payments can be refunded")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// SubscriptionDays is the validity window granted by a completed payment.
const SubscriptionDays = 30

// Payment is a recruiter subscription payment. Completing one activates
// the recruiter's subscription; refunding one suspends it.
type Payment struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecruiterID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"recruiter_id"`
	Amount            float64    `gorm:"not null" json:"amount"`
	Currency          string     `gorm:"size:3;default:'XOF'" json:"currency"`
	Method            string     `gorm:"size:50;not null" json:"method"`
	Status            string     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	TransactionID     string     `gorm:"size:255;index" json:"transaction_id,omitempty"`
	ExternalReference string     `gorm:"size:255" json:"external_reference,omitempty"`
	PaymentProofURL   string     `gorm:"size:500" json:"payment_proof_url,omitempty"`
	Notes             string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	ValidUntil        *time.Time `gorm:"type:date" json:"valid_until,omitempty"`
	RefundedAt        *time.Time `json:"refunded_at,omitempty"`
	RefundReason      string     `gorm:"type:text" json:"refund_reason,omitempty"`
	Recruiter         Recruiter  `gorm:"foreignKey:RecruiterID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// MarkAsPaid completes a pending payment, stamping paid_at and deriving
// valid_until = paid_at date + 30 days when not already set.
func (p *Payment) MarkAsPaid(transactionID string, now time.Time) error {
	if p.Status != PaymentPending {
		return ErrPaymentNotPending
	}
	p.Status = PaymentCompleted
	p.PaidAt = &now
	if transactionID != "" {
		p.TransactionID = transactionID
	}
	if p.ValidUntil == nil {
		until := now.Truncate(24*time.Hour).AddDate(0, 0, SubscriptionDays)
		p.ValidUntil = &until
	}
	return nil
}

// MarkAsFailed rejects a pending payment, recording the reason in the notes.
func (p *Payment) MarkAsFailed(reason string) error {
	if p.Status != PaymentPending {
		return ErrPaymentNotPending
	}
	p.Status = PaymentFailed
	if reason != "" {
		p.Notes = reason
	}
	return nil
}

// Refund reverses a completed payment.
func (p *Payment) Refund(reason string, now time.Time) error {
	if p.Status != PaymentCompleted {
		return ErrPaymentNotCompleted
	}
	p.Status = PaymentRefunded
	p.RefundedAt = &now
	if reason != "" {
		p.RefundReason = reason
	}
	return nil
}
