package main

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/config"
	"github.com/recruitsss/recruitsss-backend/internal/database"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/logging"
	"github.com/recruitsss/recruitsss-backend/internal/models"
	"github.com/recruitsss/recruitsss-backend/internal/services"
)

const (
	adminEmail     = "admin@recruitsss.app"
	recruiterEmail = "recruiter@recruitsss.app"
)

// Seeds a demo dataset: an admin, a recruiter with a verified payment and
// an active subscription, two candidates, published and draft jobs, a saved
// job and applications across statuses. Everything except the admin account
// goes through the services, so counters, notifications and state machines
// stay consistent with the API. Runs once; a second run is a no-op.
func main() {
	logging.Setup()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		fatal("database connection failed", err)
	}
	if err := database.Migrate(); err != nil {
		fatal("migration failed", err)
	}

	db := database.DB
	var existing models.User
	if err := db.Where("email = ?", recruiterEmail).First(&existing).Error; err == nil {
		slog.Info("demo data already present, nothing to do")
		return
	}

	notifications := services.NewNotificationService(db, nil)
	authSvc := services.NewAuthService(db, cfg, notifications)
	jobSvc := services.NewJobService(db, notifications)
	appSvc := services.NewApplicationService(db, notifications)
	paySvc := services.NewPaymentService(db, notifications)

	password := demoPassword()

	admin := seedAdmin(db, password)
	recruiter := register(authSvc, &dto.RegisterRequest{
		Email:              recruiterEmail,
		Password:           password,
		PasswordConfirm:    password,
		FirstName:          "Moussa",
		LastName:           "Ndiaye",
		Role:               models.RoleRecruiter,
		CompanyName:        "Teranga Tech",
		CompanyDescription: "Studio logiciel basé à Dakar.",
		Industry:           "Software",
	})
	fatou := register(authSvc, &dto.RegisterRequest{
		Email:           "candidate@recruitsss.app",
		Password:        password,
		PasswordConfirm: password,
		FirstName:       "Fatou",
		LastName:        "Sall",
		Role:            models.RoleCandidate,
		Bio:             "Développeuse backend avec cinq ans d'expérience sur des plateformes de paiement.",
		Skills:          []string{"Go", "PostgreSQL", "RabbitMQ"},
		ExperienceYears: 5,
		Location:        "Dakar",
	})
	ousmane := register(authSvc, &dto.RegisterRequest{
		Email:           "candidate2@recruitsss.app",
		Password:        password,
		PasswordConfirm: password,
		FirstName:       "Ousmane",
		LastName:        "Fall",
		Role:            models.RoleCandidate,
		Bio:             "Développeur mobile, deux ans d'expérience.",
		Skills:          []string{"Dart", "Flutter"},
		ExperienceYears: 2,
		Location:        "Thiès",
	})

	adminActor := actorFor(db, admin)
	recruiterActor := actorFor(db, recruiter)
	fatouActor := actorFor(db, fatou)
	ousmaneActor := actorFor(db, ousmane)

	// Activate the recruiter's subscription through the payment workflow.
	payment, err := paySvc.Create(recruiterActor, &dto.CreatePaymentRequest{
		Amount: 50000,
		Method: models.PaymentMethodMobileMoney,
		Notes:  "Abonnement mensuel de démonstration.",
	})
	if err != nil {
		fatal("failed to seed payment", err)
	}
	if _, err := paySvc.Verify(adminActor, payment.ID.String(), &dto.VerifyPaymentRequest{TransactionID: "SEED-WAVE-0001"}); err != nil {
		fatal("failed to verify seeded payment", err)
	}
	// The actor carries the pre-verification profile, reload it.
	recruiterActor = actorFor(db, recruiter)

	minBackend, maxBackend := 800000.0, 1200000.0
	backend := seedJob(jobSvc, recruiterActor, &dto.CreateJobRequest{
		Title:          "Ingénieur Backend Go",
		Description:    "Conception et exploitation des services de la plateforme de recrutement.",
		ContractType:   models.ContractCDI,
		Location:       "Dakar",
		SalaryMin:      &minBackend,
		SalaryMax:      &maxBackend,
		SkillsRequired: []string{"Go", "PostgreSQL"},
	}, true)
	mobile := seedJob(jobSvc, recruiterActor, &dto.CreateJobRequest{
		Title:          "Développeur Mobile Flutter",
		Description:    "Développement de l'application candidat sur iOS et Android.",
		ContractType:   models.ContractCDD,
		Location:       "Dakar",
		IsRemote:       true,
		SkillsRequired: []string{"Dart", "Flutter"},
	}, true)
	seedJob(jobSvc, recruiterActor, &dto.CreateJobRequest{
		Title:        "Stagiaire Data",
		Description:  "Analyse des données d'usage de la plateforme.",
		ContractType: models.ContractInternship,
		Location:     "Dakar",
	}, false)

	if _, err := jobSvc.SaveJob(fatouActor, mobile.ID.String()); err != nil {
		fatal("failed to seed saved job", err)
	}

	// Applications across the whole status range.
	interview := apply(appSvc, fatouActor, backend, "Madame, Monsieur, votre offre correspond à mon parcours.")
	rejected := apply(appSvc, fatouActor, mobile, "")
	withdrawn := apply(appSvc, ousmaneActor, mobile, "")
	apply(appSvc, ousmaneActor, backend, "")

	step := func(what string, err error) {
		if err != nil {
			fatal("failed to seed "+what, err)
		}
	}
	_, err = appSvc.MarkViewed(recruiterActor, interview.ID.String())
	step("viewed application", err)
	_, err = appSvc.Shortlist(recruiterActor, interview.ID.String())
	step("shortlisted application", err)
	when := time.Now().AddDate(0, 0, 7)
	_, err = appSvc.ScheduleInterview(recruiterActor, interview.ID.String(), &dto.ScheduleInterviewRequest{InterviewDate: &when})
	step("scheduled interview", err)
	_, err = appSvc.Reject(recruiterActor, rejected.ID.String(), "Nous recherchons un profil plus expérimenté sur Flutter.")
	step("rejected application", err)
	_, err = appSvc.Withdraw(ousmaneActor, withdrawn.ID.String())
	step("withdrawn application", err)

	slog.Info("seed complete",
		"users", 4,
		"jobs", 3,
		"applications", 4,
		"payments", 1)
}

// seedAdmin bootstraps the one account the registration flow cannot create.
func seedAdmin(db *gorm.DB, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fatal("failed to hash password", err)
	}
	admin := &models.User{
		Email:         adminEmail,
		Password:      string(hash),
		FirstName:     "Awa",
		LastName:      "Diop",
		Role:          models.RoleAdmin,
		Status:        models.UserStatusActive,
		EmailVerified: true,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.Admin{ID: admin.ID, CanManageUsers: true, CanManageJobs: true,
			CanManagePayments: true, CanViewAnalytics: true}).Error
	})
	if err != nil {
		fatal("failed to seed admin", err)
	}
	slog.Info("seeded user", "email", admin.Email, "role", admin.Role)
	return admin
}

func register(svc *services.AuthService, req *dto.RegisterRequest) *models.User {
	resp, err := svc.Register(req)
	if err != nil {
		fatal("failed to register "+req.Email, err)
	}
	slog.Info("seeded user", "email", resp.User.Email, "role", resp.User.Role)
	return resp.User
}

func seedJob(svc *services.JobService, recruiter *actor.Actor, req *dto.CreateJobRequest, publish bool) *models.JobOffer {
	job, err := svc.Create(recruiter, req)
	if err != nil {
		fatal("failed to seed job "+req.Title, err)
	}
	if publish {
		if job, err = svc.Publish(recruiter, job.ID.String()); err != nil {
			fatal("failed to publish job "+req.Title, err)
		}
	}
	return job
}

func apply(svc *services.ApplicationService, candidate *actor.Actor, job *models.JobOffer, coverLetter string) *models.Application {
	app, err := svc.Apply(candidate, &dto.ApplyRequest{JobOfferID: job.ID.String(), CoverLetter: coverLetter})
	if err != nil {
		fatal("failed to seed application", err)
	}
	return app
}

// actorFor loads the caller the way the request middleware would.
func actorFor(db *gorm.DB, u *models.User) *actor.Actor {
	a := &actor.Actor{User: u}
	var err error
	switch u.Role {
	case models.RoleCandidate:
		var c models.Candidate
		err = db.First(&c, "id = ?", u.ID).Error
		a.Candidate = &c
	case models.RoleRecruiter:
		var r models.Recruiter
		err = db.First(&r, "id = ?", u.ID).Error
		a.Recruiter = &r
	case models.RoleAdmin:
		var ad models.Admin
		err = db.First(&ad, "id = ?", u.ID).Error
		a.Admin = &ad
	}
	if err != nil {
		fatal("failed to load profile for "+u.Email, err)
	}
	return a
}

func demoPassword() string {
	if p := os.Getenv("SEED_PASSWORD"); p != "" {
		return p
	}
	return "ChangeMe123!"
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
