package dto

import "time"

type CreateJobRequest struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Requirements      string     `json:"requirements"`
	Responsibilities  string     `json:"responsibilities"`
	SalaryMin         *float64   `json:"salary_min"`
	SalaryMax         *float64   `json:"salary_max"`
	SalaryCurrency    string     `json:"salary_currency"`
	SalaryPeriod      string     `json:"salary_period"`
	ContractType      string     `json:"contract_type"`
	Location          string     `json:"location"`
	IsRemote          bool       `json:"is_remote"`
	SkillsRequired    []string   `json:"skills_required"`
	ExperienceLevel   string     `json:"experience_level"`
	EducationRequired string     `json:"education_required"`
	ExpiresAt         *time.Time `json:"expires_at"`
}

type UpdateJobRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Requirements      *string    `json:"requirements"`
	Responsibilities  *string    `json:"responsibilities"`
	SalaryMin         *float64   `json:"salary_min"`
	SalaryMax         *float64   `json:"salary_max"`
	SalaryPeriod      *string    `json:"salary_period"`
	Location          *string    `json:"location"`
	IsRemote          *bool      `json:"is_remote"`
	SkillsRequired    *[]string  `json:"skills_required"`
	ExperienceLevel   *string    `json:"experience_level"`
	EducationRequired *string    `json:"education_required"`
	ExpiresAt         *time.Time `json:"expires_at"`
}

// JobFilter collects the list-endpoint query parameters.
type JobFilter struct {
	Status          string
	ContractType    string
	ExperienceLevel string
	Location        string
	IsRemote        *bool
	Search          string
	Page            int
	Limit           int
}

type SaveJobRequest struct {
	JobOfferID string `json:"job_offer_id"`
}
