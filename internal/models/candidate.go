package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Candidate is the role profile for job seekers, keyed by the user id.
type Candidate struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Bio                 string         `gorm:"type:text" json:"bio,omitempty"`
	Skills              pq.StringArray `gorm:"type:text[]" json:"skills"`
	ExperienceYears     int            `gorm:"default:0" json:"experience_years"`
	Education           string         `gorm:"size:255" json:"education,omitempty"`
	DesiredSalaryMin    *float64       `json:"desired_salary_min,omitempty"`
	DesiredSalaryMax    *float64       `json:"desired_salary_max,omitempty"`
	SalaryCurrency      string         `gorm:"size:3;default:'XOF'" json:"salary_currency"`
	AvailableFrom       *time.Time     `json:"available_from,omitempty"`
	Location            string         `gorm:"size:255;index" json:"location,omitempty"`
	IsAvailable         bool           `gorm:"default:true;index" json:"is_available"`
	CVURL               string         `gorm:"size:500" json:"cv_url,omitempty"`
	CVFilename          string         `gorm:"size:255" json:"cv_filename,omitempty"`
	CVUploadedAt        *time.Time     `json:"cv_uploaded_at,omitempty"`
	ProfilePictureURL   string         `gorm:"size:500" json:"profile_picture_url,omitempty"`
	LinkedinURL         string         `gorm:"size:255" json:"linkedin_url,omitempty"`
	GithubURL           string         `gorm:"size:255" json:"github_url,omitempty"`
	PortfolioURL        string         `gorm:"size:255" json:"portfolio_url,omitempty"`
	ProfileCompleteness int            `gorm:"default:0" json:"profile_completeness"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	User                User           `gorm:"foreignKey:ID" json:"user,omitempty"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CalculateProfileCompleteness recomputes the 0-100 completeness score
// and stores it on the profile.
func (c *Candidate) CalculateProfileCompleteness() int {
	score := 0
	if len(c.Bio) > 50 {
		score += 10
	}
	if len(c.Skills) >= 3 {
		score += 15
	}
	if c.ExperienceYears > 0 {
		score += 10
	}
	if c.Education != "" {
		score += 10
	}
	if c.CVURL != "" {
		score += 25
	}
	if c.ProfilePictureURL != "" {
		score += 10
	}
	if c.Location != "" {
		score += 5
	}
	if c.DesiredSalaryMin != nil {
		score += 5
	}
	if c.LinkedinURL != "" {
		score += 5
	}
	if c.PortfolioURL != "" {
		score += 5
	}
	c.ProfileCompleteness = score
	return score
}
