package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Job offer statuses.
const (
	JobStatusDraft     = "DRAFT"
	JobStatusPublished = "PUBLISHED"
	JobStatusClosed    = "CLOSED"
	JobStatusArchived  = "ARCHIVED"
	JobStatusRejected  = "REJECTED"
)

// Contract types.
const (
	ContractCDI            = "CDI"
	ContractCDD            = "CDD"
	ContractFreelance      = "FREELANCE"
	ContractInternship     = "INTERNSHIP"
	ContractApprenticeship = "APPRENTICESHIP"
)

var (
	ErrJobNotDraft     = errors.New("only draft jobs can be published")
	ErrJobNotPublished = errors.New("only published jobs can be closed")
	ErrSalaryRange     = errors.New("salary_min cannot exceed salary_max")
)

// JobOffer is a job posting owned by a recruiter. It is created as DRAFT
// and moves to PUBLISHED then CLOSED; the two counters are incremented
// with atomic column updates, never through this struct.
type JobOffer struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecruiterID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"recruiter_id"`
	Title             string         `gorm:"size:255;not null;index" json:"title"`
	Description       string         `gorm:"type:text;not null" json:"description"`
	Requirements      string         `gorm:"type:text" json:"requirements,omitempty"`
	Responsibilities  string         `gorm:"type:text" json:"responsibilities,omitempty"`
	SalaryMin         *float64       `json:"salary_min,omitempty"`
	SalaryMax         *float64       `json:"salary_max,omitempty"`
	SalaryCurrency    string         `gorm:"size:3;default:'XOF'" json:"salary_currency"`
	SalaryPeriod      string         `gorm:"size:20" json:"salary_period,omitempty"`
	ContractType      string         `gorm:"size:50;not null;index" json:"contract_type"`
	Location          string         `gorm:"size:255;index" json:"location,omitempty"`
	IsRemote          bool           `gorm:"default:false" json:"is_remote"`
	SkillsRequired    pq.StringArray `gorm:"type:text[]" json:"skills_required"`
	ExperienceLevel   string         `gorm:"size:50" json:"experience_level,omitempty"`
	EducationRequired string         `gorm:"size:255" json:"education_required,omitempty"`
	Status            string         `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	RejectionReason   string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	PublishedAt       *time.Time     `gorm:"index" json:"published_at,omitempty"`
	ExpiresAt         *time.Time     `json:"expires_at,omitempty"`
	ClosedAt          *time.Time     `json:"closed_at,omitempty"`
	ViewsCount        int            `gorm:"default:0" json:"views_count"`
	ApplicationsCount int            `gorm:"default:0" json:"applications_count"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	Recruiter         Recruiter      `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
}

func (JobOffer) TableName() string {
	return "job_offers"
}

// IsActive reports whether the offer is currently open to applications.
func (j *JobOffer) IsActive(now time.Time) bool {
	if j.Status != JobStatusPublished {
		return false
	}
	if j.ExpiresAt != nil && j.ExpiresAt.Before(now) {
		return false
	}
	return true
}

// DaysRemaining returns the number of days until expiry, nil when the
// offer never expires.
func (j *JobOffer) DaysRemaining(now time.Time) *int {
	if j.ExpiresAt == nil {
		return nil
	}
	days := int(j.ExpiresAt.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

// ValidateSalaryRange rejects a min above the max when both are set.
func (j *JobOffer) ValidateSalaryRange() error {
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return ErrSalaryRange
	}
	return nil
}

// Publish moves a draft offer to PUBLISHED and stamps published_at.
func (j *JobOffer) Publish(now time.Time) error {
	if j.Status != JobStatusDraft {
		return ErrJobNotDraft
	}
	j.Status = JobStatusPublished
	j.PublishedAt = &now
	return nil
}

// Close moves a published offer to CLOSED and stamps closed_at.
func (j *JobOffer) Close(now time.Time) error {
	if j.Status != JobStatusPublished {
		return ErrJobNotPublished
	}
	j.Status = JobStatusClosed
	j.ClosedAt = &now
	return nil
}
