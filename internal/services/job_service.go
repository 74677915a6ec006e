package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

var (
	ErrSubscriptionRequired = errors.New("an active subscription is required to post jobs")
	ErrInvalidContractType  = errors.New("invalid contract type")
	ErrJobTitleRequired     = errors.New("title and description are required")
	ErrAlreadySaved         = errors.New("job already saved")
)

type JobService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewJobService(db *gorm.DB, notifications *NotificationService) *JobService {
	return &JobService{db: db, notifications: notifications}
}

func validContractType(ct string) bool {
	switch ct {
	case models.ContractCDI, models.ContractCDD, models.ContractInternship,
		models.ContractFreelance, models.ContractApprenticeship:
		return true
	}
	return false
}

func (s *JobService) Create(a *actor.Actor, req *dto.CreateJobRequest) (*models.JobOffer, error) {
	if !a.IsRecruiter() {
		return nil, ErrForbidden
	}
	if !a.Recruiter.CanPostJobs(time.Now()) {
		return nil, ErrSubscriptionRequired
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrJobTitleRequired
	}
	if !validContractType(req.ContractType) {
		return nil, ErrInvalidContractType
	}

	job := &models.JobOffer{
		RecruiterID:       a.ID(),
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		Requirements:      req.Requirements,
		Responsibilities:  req.Responsibilities,
		ContractType:      req.ContractType,
		Location:          req.Location,
		IsRemote:          req.IsRemote,
		SalaryMin:         req.SalaryMin,
		SalaryMax:         req.SalaryMax,
		SalaryCurrency:    req.SalaryCurrency,
		SalaryPeriod:      req.SalaryPeriod,
		SkillsRequired:    pq.StringArray(req.SkillsRequired),
		ExperienceLevel:   req.ExperienceLevel,
		EducationRequired: req.EducationRequired,
		ExpiresAt:         req.ExpiresAt,
		Status:            models.JobStatusDraft,
	}
	if job.SalaryCurrency == "" {
		job.SalaryCurrency = "XOF"
	}
	if err := job.ValidateSalaryRange(); err != nil {
		return nil, err
	}
	if err := s.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Get returns a job visible to the caller. Published jobs are public;
// drafts and closed jobs are visible only to their owner and admins.
// Every read by anyone other than the owning recruiter counts a view.
func (s *JobService) Get(a *actor.Actor, id string) (*models.JobOffer, error) {
	var job models.JobOffer
	if err := s.db.Preload("Recruiter").Preload("Recruiter.User").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	owner := a != nil && a.IsRecruiter() && job.RecruiterID == a.ID()
	if job.Status != models.JobStatusPublished && !owner && (a == nil || !a.IsAdmin()) {
		return nil, ErrNotFound
	}

	if !owner {
		if err := s.db.Model(&models.JobOffer{}).Where("id = ?", job.ID).
			UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
			slog.Warn("failed to increment job views", "job_id", job.ID, "error", err)
		} else {
			job.ViewsCount++
		}
	}
	return &job, nil
}

// List applies role scoping: admins see everything, recruiters see
// published jobs plus their own, everyone else sees published only.
func (s *JobService) List(a *actor.Actor, filter *dto.JobFilter) ([]models.JobOffer, *dto.ListMeta, error) {
	page, limit := dto.Pagination(filter.Page, filter.Limit)
	q := s.db.Model(&models.JobOffer{}).Preload("Recruiter").Preload("Recruiter.User")

	switch {
	case a != nil && a.IsAdmin():
	case a != nil && a.IsRecruiter():
		q = q.Where("status = ? OR recruiter_id = ?", models.JobStatusPublished, a.ID())
	default:
		q = q.Where("status = ?", models.JobStatusPublished)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ContractType != "" {
		q = q.Where("contract_type = ?", filter.ContractType)
	}
	if filter.ExperienceLevel != "" {
		q = q.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.IsRemote != nil {
		q = q.Where("is_remote = ?", *filter.IsRemote)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var jobs []models.JobOffer
	if err := q.Order("published_at DESC NULLS LAST, created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, nil, err
	}
	return jobs, &dto.ListMeta{Total: total, Page: page, Limit: limit}, nil
}

func (s *JobService) MyJobs(a *actor.Actor, page, limit int) ([]models.JobOffer, *dto.ListMeta, error) {
	if !a.IsRecruiter() {
		return nil, nil, ErrForbidden
	}
	page, limit = dto.Pagination(page, limit)

	q := s.db.Model(&models.JobOffer{}).Where("recruiter_id = ?", a.ID())
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	var jobs []models.JobOffer
	if err := q.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, nil, err
	}
	return jobs, &dto.ListMeta{Total: total, Page: page, Limit: limit}, nil
}

// ownedJob loads a job and checks the caller may manage it.
func (s *JobService) ownedJob(a *actor.Actor, id string) (*models.JobOffer, error) {
	var job models.JobOffer
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if a.IsRecruiter() && job.RecruiterID == a.ID() {
		return &job, nil
	}
	if a.IsAdmin() {
		return &job, nil
	}
	return nil, ErrNotFound
}

func (s *JobService) Update(a *actor.Actor, id string, req *dto.UpdateJobRequest) (*models.JobOffer, error) {
	job, err := s.ownedJob(a, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrJobTitleRequired
		}
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = *req.Responsibilities
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.SalaryPeriod != nil {
		job.SalaryPeriod = *req.SalaryPeriod
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.EducationRequired != nil {
		job.EducationRequired = *req.EducationRequired
	}
	if req.SkillsRequired != nil {
		job.SkillsRequired = pq.StringArray(*req.SkillsRequired)
	}
	if req.ExpiresAt != nil {
		job.ExpiresAt = req.ExpiresAt
	}
	if err := job.ValidateSalaryRange(); err != nil {
		return nil, err
	}
	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Publish(a *actor.Actor, id string) (*models.JobOffer, error) {
	job, err := s.ownedJob(a, id)
	if err != nil {
		return nil, err
	}
	if err := job.Publish(time.Now()); err != nil {
		return nil, err
	}
	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	owner := a.User
	if !a.IsRecruiter() || job.RecruiterID != a.ID() {
		var u models.User
		if err := s.db.First(&u, "id = ?", job.RecruiterID).Error; err == nil {
			owner = &u
		} else {
			owner = nil
		}
	}
	if owner != nil {
		s.notifications.NotifyJobPublished(owner, job.Title)
	}
	return job, nil
}

func (s *JobService) Close(a *actor.Actor, id string) (*models.JobOffer, error) {
	job, err := s.ownedJob(a, id)
	if err != nil {
		return nil, err
	}
	if err := job.Close(time.Now()); err != nil {
		return nil, err
	}
	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) SaveJob(a *actor.Actor, jobID string) (*models.SavedJob, error) {
	if !a.IsCandidate() {
		return nil, ErrForbidden
	}
	var job models.JobOffer
	if err := s.db.First(&job, "id = ? AND status = ?", jobID, models.JobStatusPublished).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	saved := &models.SavedJob{CandidateID: a.ID(), JobOfferID: job.ID}
	if err := s.db.Create(saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySaved
		}
		return nil, err
	}
	return saved, nil
}

func (s *JobService) UnsaveJob(a *actor.Actor, savedID string) error {
	if !a.IsCandidate() {
		return ErrForbidden
	}
	res := s.db.Where("id = ? AND candidate_id = ?", savedID, a.ID()).Delete(&models.SavedJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *JobService) ListSavedJobs(a *actor.Actor, page, limit int) ([]models.SavedJob, *dto.ListMeta, error) {
	if !a.IsCandidate() {
		return nil, nil, ErrForbidden
	}
	page, limit = dto.Pagination(page, limit)

	q := s.db.Model(&models.SavedJob{}).Where("candidate_id = ?", a.ID())
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	var saved []models.SavedJob
	if err := q.Preload("JobOffer").Order("saved_at DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&saved).Error; err != nil {
		return nil, nil, err
	}
	return saved, &dto.ListMeta{Total: total, Page: page, Limit: limit}, nil
}
