package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Application statuses. SUBMITTED is the initial state; ACCEPTED, REJECTED
// and WITHDRAWN are terminal.
const (
	ApplicationSubmitted          = "SUBMITTED"
	ApplicationViewed             = "VIEWED"
	ApplicationShortlisted        = "SHORTLISTED"
	ApplicationInterviewScheduled = "INTERVIEW_SCHEDULED"
	ApplicationRejected           = "REJECTED"
	ApplicationAccepted           = "ACCEPTED"
	ApplicationWithdrawn          = "WITHDRAWN"
)

var (
	ErrApplicationWithdrawn  = errors.New("application is immutable once withdrawn")
	ErrApplicationDecided    = errors.New("cannot revert a decided application")
	ErrCannotWithdraw        = errors.New("cannot withdraw a decided application")
	ErrInterviewDateRequired = errors.New("interview_date is required")
	ErrInterviewDateInPast   = errors.New("interview_date cannot be in the past")
)

// Application links a candidate to a job offer. The (candidate, job_offer)
// pair is unique at the storage layer and rows are never hard-deleted.
type Application struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CandidateID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_job;index" json:"candidate_id"`
	JobOfferID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_job;index" json:"job_offer_id"`
	CoverLetter    string     `gorm:"type:text" json:"cover_letter,omitempty"`
	Status         string     `gorm:"size:50;not null;default:'SUBMITTED';index" json:"status"`
	MatchScore     *float64   `json:"match_score,omitempty"`
	RecruiterNotes string     `gorm:"type:text" json:"recruiter_notes,omitempty"`
	InterviewDate  *time.Time `json:"interview_date,omitempty"`
	AppliedAt      time.Time  `gorm:"autoCreateTime;index" json:"applied_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ViewedAt       *time.Time `json:"viewed_at,omitempty"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	Candidate      Candidate  `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	JobOffer       JobOffer   `gorm:"foreignKey:JobOfferID" json:"job_offer,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

func (a *Application) IsTerminal() bool {
	switch a.Status {
	case ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn:
		return true
	}
	return false
}

// guardMutable rejects recruiter transitions out of a terminal state.
func (a *Application) guardMutable() error {
	switch a.Status {
	case ApplicationWithdrawn:
		return ErrApplicationWithdrawn
	case ApplicationAccepted, ApplicationRejected:
		return ErrApplicationDecided
	}
	return nil
}

// respond stamps responded_at on the first transition into a responded state.
func (a *Application) respond(now time.Time) {
	if a.RespondedAt == nil {
		a.RespondedAt = &now
	}
}

// MarkViewed moves a submitted application to VIEWED. Calling it once the
// application is already past SUBMITTED is a no-op, not an error.
func (a *Application) MarkViewed(now time.Time) error {
	if err := a.guardMutable(); err != nil {
		return err
	}
	if a.Status != ApplicationSubmitted {
		return nil
	}
	a.Status = ApplicationViewed
	a.ViewedAt = &now
	return nil
}

// Shortlist marks the application as under active consideration.
func (a *Application) Shortlist(now time.Time) error {
	if err := a.guardMutable(); err != nil {
		return err
	}
	a.Status = ApplicationShortlisted
	a.respond(now)
	return nil
}

// ScheduleInterview requires a present-or-future interview date.
func (a *Application) ScheduleInterview(date *time.Time, now time.Time) error {
	if err := a.guardMutable(); err != nil {
		return err
	}
	if date == nil || date.IsZero() {
		return ErrInterviewDateRequired
	}
	if date.Before(now) {
		return ErrInterviewDateInPast
	}
	a.Status = ApplicationInterviewScheduled
	a.InterviewDate = date
	a.respond(now)
	return nil
}

// Reject declines the application, recording the reason when given.
func (a *Application) Reject(reason string, now time.Time) error {
	if err := a.guardMutable(); err != nil {
		return err
	}
	a.Status = ApplicationRejected
	if reason != "" {
		a.RecruiterNotes = reason
	}
	a.respond(now)
	return nil
}

// Accept approves the application.
func (a *Application) Accept(now time.Time) error {
	if err := a.guardMutable(); err != nil {
		return err
	}
	a.Status = ApplicationAccepted
	a.respond(now)
	return nil
}

// Withdraw is the candidate-triggered exit. Withdrawing an already
// withdrawn application is a no-op; a decided one is a conflict.
func (a *Application) Withdraw() error {
	switch a.Status {
	case ApplicationWithdrawn:
		return nil
	case ApplicationAccepted, ApplicationRejected:
		return ErrCannotWithdraw
	}
	a.Status = ApplicationWithdrawn
	return nil
}
