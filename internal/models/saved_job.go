package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is a candidate bookmark on a job offer. The (candidate, job)
// pair is unique at the storage layer.
type SavedJob struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_candidate_job;index" json:"candidate_id"`
	JobOfferID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_candidate_job;index" json:"job_offer_id"`
	SavedAt     time.Time `gorm:"autoCreateTime" json:"saved_at"`
	Candidate   Candidate `gorm:"foreignKey:CandidateID" json:"-"`
	JobOffer    JobOffer  `gorm:"foreignKey:JobOfferID" json:"job_offer,omitempty"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}
