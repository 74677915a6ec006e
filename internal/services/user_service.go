package services

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

// ErrCVUploadUnavailable marks the CV upload endpoint, which needs an
// object store that is not wired yet.
var ErrCVUploadUnavailable = errors.New("CV upload is not available")

var (
	ErrInvalidUserStatus   = errors.New("invalid status")
	ErrCompanyNameRequired = errors.New("company_name cannot be empty")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get returns another account. Admins see anyone; everyone else only
// themselves.
func (s *UserService) Get(a *actor.Actor, id string) (*models.User, error) {
	if !a.IsAdmin() && a.ID().String() != id {
		return nil, ErrNotFound
	}
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List is admin-only.
func (s *UserService) List(a *actor.Actor, role string, page, limit int) ([]models.User, *dto.ListMeta, error) {
	if !a.IsAdmin() {
		return nil, nil, ErrForbidden
	}
	page, limit = dto.Pagination(page, limit)

	q := s.db.Model(&models.User{}).Where("status <> ?", models.UserStatusDeleted)
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	var users []models.User
	if err := q.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		return nil, nil, err
	}
	return users, &dto.ListMeta{Total: total, Page: page, Limit: limit}, nil
}

// UpdateMe updates the caller's base account fields.
func (s *UserService) UpdateMe(a *actor.Actor, req *dto.UpdateUserRequest) (*models.User, error) {
	u := a.User
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if err := s.db.Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// SetStatus is the admin suspend/reactivate switch.
func (s *UserService) SetStatus(a *actor.Actor, id, status string) (*models.User, error) {
	if !a.IsAdmin() {
		return nil, ErrForbidden
	}
	switch status {
	case models.UserStatusActive, models.UserStatusSuspended, models.UserStatusDeleted:
	default:
		return nil, ErrInvalidUserStatus
	}
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.Status = status
	if err := s.db.Save(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateCandidateProfile applies a partial update and recomputes the
// completeness score in the same write.
func (s *UserService) UpdateCandidateProfile(a *actor.Actor, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	if !a.IsCandidate() {
		return nil, ErrForbidden
	}
	c := a.Candidate

	if req.Bio != nil {
		c.Bio = *req.Bio
	}
	if req.Skills != nil {
		c.Skills = pq.StringArray(*req.Skills)
	}
	if req.ExperienceYears != nil {
		c.ExperienceYears = *req.ExperienceYears
	}
	if req.Education != nil {
		c.Education = *req.Education
	}
	if req.DesiredSalaryMin != nil {
		c.DesiredSalaryMin = req.DesiredSalaryMin
	}
	if req.DesiredSalaryMax != nil {
		c.DesiredSalaryMax = req.DesiredSalaryMax
	}
	if req.SalaryCurrency != nil {
		c.SalaryCurrency = *req.SalaryCurrency
	}
	if req.Location != nil {
		c.Location = *req.Location
	}
	if req.IsAvailable != nil {
		c.IsAvailable = *req.IsAvailable
	}
	if req.ProfilePictureURL != nil {
		c.ProfilePictureURL = *req.ProfilePictureURL
	}
	if req.LinkedinURL != nil {
		c.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		c.GithubURL = *req.GithubURL
	}
	if req.PortfolioURL != nil {
		c.PortfolioURL = *req.PortfolioURL
	}

	c.CalculateProfileCompleteness()
	if err := s.db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateRecruiterProfile applies a partial update to the company profile.
// Subscription fields are only ever written by the payment workflow.
func (s *UserService) UpdateRecruiterProfile(a *actor.Actor, req *dto.UpdateRecruiterRequest) (*models.Recruiter, error) {
	if !a.IsRecruiter() {
		return nil, ErrForbidden
	}
	r := a.Recruiter

	if req.CompanyName != nil {
		if *req.CompanyName == "" {
			return nil, ErrCompanyNameRequired
		}
		r.CompanyName = *req.CompanyName
	}
	if req.CompanyDescription != nil {
		r.CompanyDescription = *req.CompanyDescription
	}
	if req.CompanyLogoURL != nil {
		r.CompanyLogoURL = *req.CompanyLogoURL
	}
	if req.Website != nil {
		r.Website = *req.Website
	}
	if req.CompanySize != nil {
		r.CompanySize = *req.CompanySize
	}
	if req.Industry != nil {
		r.Industry = *req.Industry
	}
	if req.Location != nil {
		r.Location = *req.Location
	}

	if err := s.db.Save(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetCandidate returns a candidate profile. Recruiters and admins can
// browse candidates; a candidate only reads their own profile.
func (s *UserService) GetCandidate(a *actor.Actor, id string) (*models.Candidate, error) {
	if a.IsCandidate() && a.ID().String() != id {
		return nil, ErrNotFound
	}
	var c models.Candidate
	if err := s.db.Preload("User").First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
