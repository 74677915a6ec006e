package handlers

import (
	"github.com/google/uuid"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

// Handlers depend on these interfaces rather than the concrete services
// so tests can substitute mocks.

type AuthAPI interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error)
	Logout(req *dto.LogoutRequest) error
}

type UserAPI interface {
	Get(a *actor.Actor, id string) (*models.User, error)
	List(a *actor.Actor, role string, page, limit int) ([]models.User, *dto.ListMeta, error)
	UpdateMe(a *actor.Actor, req *dto.UpdateUserRequest) (*models.User, error)
	SetStatus(a *actor.Actor, id, status string) (*models.User, error)
	UpdateCandidateProfile(a *actor.Actor, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	UpdateRecruiterProfile(a *actor.Actor, req *dto.UpdateRecruiterRequest) (*models.Recruiter, error)
	GetCandidate(a *actor.Actor, id string) (*models.Candidate, error)
}

type JobAPI interface {
	Create(a *actor.Actor, req *dto.CreateJobRequest) (*models.JobOffer, error)
	Get(a *actor.Actor, id string) (*models.JobOffer, error)
	List(a *actor.Actor, filter *dto.JobFilter) ([]models.JobOffer, *dto.ListMeta, error)
	MyJobs(a *actor.Actor, page, limit int) ([]models.JobOffer, *dto.ListMeta, error)
	Update(a *actor.Actor, id string, req *dto.UpdateJobRequest) (*models.JobOffer, error)
	Publish(a *actor.Actor, id string) (*models.JobOffer, error)
	Close(a *actor.Actor, id string) (*models.JobOffer, error)
	SaveJob(a *actor.Actor, jobID string) (*models.SavedJob, error)
	UnsaveJob(a *actor.Actor, savedID string) error
	ListSavedJobs(a *actor.Actor, page, limit int) ([]models.SavedJob, *dto.ListMeta, error)
}

type ApplicationAPI interface {
	Apply(a *actor.Actor, req *dto.ApplyRequest) (*models.Application, error)
	Get(a *actor.Actor, id string) (*models.Application, error)
	List(a *actor.Actor, jobID string, page, limit int) ([]models.Application, *dto.ListMeta, error)
	MarkViewed(a *actor.Actor, id string) (*models.Application, error)
	Shortlist(a *actor.Actor, id string) (*models.Application, error)
	ScheduleInterview(a *actor.Actor, id string, req *dto.ScheduleInterviewRequest) (*models.Application, error)
	Reject(a *actor.Actor, id string, reason string) (*models.Application, error)
	Accept(a *actor.Actor, id string) (*models.Application, error)
	Withdraw(a *actor.Actor, id string) (*models.Application, error)
}

type PaymentAPI interface {
	Create(a *actor.Actor, req *dto.CreatePaymentRequest) (*models.Payment, error)
	Get(a *actor.Actor, id string) (*models.Payment, error)
	List(a *actor.Actor, page, limit int) ([]models.Payment, *dto.ListMeta, error)
	Verify(a *actor.Actor, id string, req *dto.VerifyPaymentRequest) (*models.Payment, error)
	Reject(a *actor.Actor, id string, reason string) (*models.Payment, error)
	Refund(a *actor.Actor, id string, reason string) (*models.Payment, error)
}

type NotificationAPI interface {
	List(a *actor.Actor, page, limit int) ([]models.Notification, int64, error)
	MarkRead(a *actor.Actor, id uuid.UUID) (*models.Notification, error)
	MarkAllRead(a *actor.Actor) (int64, error)
	UnreadCount(a *actor.Actor) (int64, error)
}
