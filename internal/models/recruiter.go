package models

import (
	"time"

	"github.com/google/uuid"
)

// Recruiter payment statuses.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusActive    = "ACTIVE"
	PaymentStatusExpired   = "EXPIRED"
	PaymentStatusSuspended = "SUSPENDED"
)

// Recruiter is the role profile for employers, keyed by the user id.
// Write actions on the job catalog are gated by the subscription fields.
type Recruiter struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName            string     `gorm:"size:255;not null;index" json:"company_name"`
	CompanyDescription     string     `gorm:"type:text" json:"company_description,omitempty"`
	CompanyLogoURL         string     `gorm:"size:500" json:"company_logo_url,omitempty"`
	Website                string     `gorm:"size:255" json:"website,omitempty"`
	CompanySize            string     `gorm:"size:50" json:"company_size,omitempty"`
	Industry               string     `gorm:"size:100;index" json:"industry,omitempty"`
	Location               string     `gorm:"size:255" json:"location,omitempty"`
	PaymentStatus          string     `gorm:"size:20;not null;default:'PENDING';index" json:"payment_status"`
	SubscriptionValidUntil *time.Time `gorm:"type:date" json:"subscription_valid_until,omitempty"`
	Verified               bool       `gorm:"default:false" json:"verified"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
	User                   User       `gorm:"foreignKey:ID" json:"user,omitempty"`
}

func (Recruiter) TableName() string {
	return "recruiters"
}

// IsSubscriptionValid reports whether the recruiter's paid subscription
// covers today. A recruiter with no recorded validity date has never paid.
func (r *Recruiter) IsSubscriptionValid(now time.Time) bool {
	if r.SubscriptionValidUntil == nil {
		return false
	}
	today := now.Truncate(24 * time.Hour)
	return !r.SubscriptionValidUntil.Before(today)
}

// CanPostJobs reports whether write actions on the job catalog are allowed.
func (r *Recruiter) CanPostJobs(now time.Time) bool {
	return r.PaymentStatus == PaymentStatusActive && r.IsSubscriptionValid(now)
}
