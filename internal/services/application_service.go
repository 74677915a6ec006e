package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

var (
	ErrJobNotAcceptingApplications = errors.New("this job is not accepting applications")
	ErrAlreadyApplied              = errors.New("you have already applied to this job")
)

type ApplicationService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewApplicationService(db *gorm.DB, notifications *NotificationService) *ApplicationService {
	return &ApplicationService{db: db, notifications: notifications}
}

// Apply creates an application to a published, unexpired job. The row
// insert and the applications_count bump happen in one transaction;
// the unique (candidate, job) index catches concurrent duplicates.
func (s *ApplicationService) Apply(a *actor.Actor, req *dto.ApplyRequest) (*models.Application, error) {
	if !a.IsCandidate() {
		return nil, ErrForbidden
	}

	var job models.JobOffer
	if err := s.db.First(&job, "id = ?", req.JobOfferID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !job.IsActive(time.Now()) {
		return nil, ErrJobNotAcceptingApplications
	}

	app := &models.Application{
		CandidateID: a.ID(),
		JobOfferID:  job.ID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationSubmitted,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		return tx.Model(&models.JobOffer{}).Where("id = ?", job.ID).
			UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	var owner models.User
	if err := s.db.First(&owner, "id = ?", job.RecruiterID).Error; err == nil {
		s.notifications.NotifyApplicationSubmitted(&owner, a.User.FullName(), job.Title)
	}
	return app, nil
}

// Get returns an application visible to the caller: the candidate who
// submitted it, the recruiter owning its job, or an admin.
func (s *ApplicationService) Get(a *actor.Actor, id string) (*models.Application, error) {
	var app models.Application
	err := s.db.Preload("JobOffer").Preload("Candidate").Preload("Candidate.User").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !s.canSee(a, &app) {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (s *ApplicationService) canSee(a *actor.Actor, app *models.Application) bool {
	switch {
	case a.IsAdmin():
		return true
	case a.IsCandidate():
		return app.CandidateID == a.ID()
	case a.IsRecruiter():
		return app.JobOffer.RecruiterID == a.ID()
	}
	return false
}

// List returns applications in the caller's scope: candidates see their
// own, recruiters see applications to their jobs, admins see everything.
func (s *ApplicationService) List(a *actor.Actor, jobID string, page, limit int) ([]models.Application, *dto.ListMeta, error) {
	page, limit = dto.Pagination(page, limit)
	q := s.db.Model(&models.Application{}).Preload("JobOffer").Preload("Candidate").Preload("Candidate.User")

	switch {
	case a.IsAdmin():
	case a.IsCandidate():
		q = q.Where("candidate_id = ?", a.ID())
	case a.IsRecruiter():
		q = q.Joins("JOIN job_offers ON job_offers.id = applications.job_offer_id").
			Where("job_offers.recruiter_id = ?", a.ID())
	default:
		return nil, nil, ErrForbidden
	}
	if jobID != "" {
		q = q.Where("applications.job_offer_id = ?", jobID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	var apps []models.Application
	if err := q.Order("applied_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&apps).Error; err != nil {
		return nil, nil, err
	}
	return apps, &dto.ListMeta{Total: total, Page: page, Limit: limit}, nil
}

// recruiterApplication loads an application the caller may act on as a
// recruiter (or admin). Out-of-scope rows read as not found.
func (s *ApplicationService) recruiterApplication(a *actor.Actor, id string) (*models.Application, error) {
	if !a.IsRecruiter() && !a.IsAdmin() {
		return nil, ErrForbidden
	}
	var app models.Application
	err := s.db.Preload("JobOffer").Preload("Candidate").Preload("Candidate.User").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if a.IsRecruiter() && app.JobOffer.RecruiterID != a.ID() {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (s *ApplicationService) save(app *models.Application) error {
	return s.db.Model(app).Select(
		"status", "interview_date", "recruiter_notes", "viewed_at", "responded_at", "updated_at",
	).Updates(app).Error
}

func (s *ApplicationService) notifyStatus(app *models.Application) {
	s.notifications.NotifyApplicationStatus(&app.Candidate.User, app.JobOffer.Title, app.Status)
}

func (s *ApplicationService) MarkViewed(a *actor.Actor, id string) (*models.Application, error) {
	app, err := s.recruiterApplication(a, id)
	if err != nil {
		return nil, err
	}
	if err := app.MarkViewed(time.Now()); err != nil {
		return nil, err
	}
	if err := s.save(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Shortlist(a *actor.Actor, id string) (*models.Application, error) {
	app, err := s.recruiterApplication(a, id)
	if err != nil {
		return nil, err
	}
	if err := app.Shortlist(time.Now()); err != nil {
		return nil, err
	}
	if err := s.save(app); err != nil {
		return nil, err
	}
	s.notifyStatus(app)
	return app, nil
}

func (s *ApplicationService) ScheduleInterview(a *actor.Actor, id string, req *dto.ScheduleInterviewRequest) (*models.Application, error) {
	app, err := s.recruiterApplication(a, id)
	if err != nil {
		return nil, err
	}
	if err := app.ScheduleInterview(req.InterviewDate, time.Now()); err != nil {
		return nil, err
	}
	if err := s.save(app); err != nil {
		return nil, err
	}
	s.notifyStatus(app)
	return app, nil
}

func (s *ApplicationService) Reject(a *actor.Actor, id string, reason string) (*models.Application, error) {
	app, err := s.recruiterApplication(a, id)
	if err != nil {
		return nil, err
	}
	if err := app.Reject(reason, time.Now()); err != nil {
		return nil, err
	}
	if err := s.save(app); err != nil {
		return nil, err
	}
	s.notifyStatus(app)
	return app, nil
}

func (s *ApplicationService) Accept(a *actor.Actor, id string) (*models.Application, error) {
	app, err := s.recruiterApplication(a, id)
	if err != nil {
		return nil, err
	}
	if err := app.Accept(time.Now()); err != nil {
		return nil, err
	}
	if err := s.save(app); err != nil {
		return nil, err
	}
	s.notifyStatus(app)
	return app, nil
}

// Withdraw is the candidate exit. It only ever touches the caller's own
// application; the row stays in place for the recruiter's records.
func (s *ApplicationService) Withdraw(a *actor.Actor, id string) (*models.Application, error) {
	if !a.IsCandidate() {
		return nil, ErrForbidden
	}
	var app models.Application
	if err := s.db.First(&app, "id = ? AND candidate_id = ?", id, a.ID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := app.Withdraw(); err != nil {
		return nil, err
	}
	if err := s.db.Model(&app).Select("status", "updated_at").Updates(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
