package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recruitsss/recruitsss-backend/internal/actor"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

// setupTestDB starts a throwaway PostgreSQL container and migrates the
// schema into it. Tests that need real storage semantics (unique indexes,
// atomic counter updates, cross-account query scoping) run against it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(3 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port.Port())

	var db *gorm.DB
	for range 10 {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err == nil {
			if sqlDB, derr := db.DB(); derr == nil && sqlDB.Ping() == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to connect after retries")

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Candidate{},
		&models.Recruiter{},
		&models.Admin{},
		&models.JobOffer{},
		&models.SavedJob{},
		&models.Application{},
		&models.Payment{},
		&models.Notification{},
	))
	return db
}

func seedCandidate(t *testing.T, db *gorm.DB, email, firstName, lastName string) *actor.Actor {
	t.Helper()
	u := &models.User{
		Email:     email,
		Password:  "not-a-real-hash",
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleCandidate,
		Status:    models.UserStatusActive,
	}
	require.NoError(t, db.Create(u).Error)
	c := &models.Candidate{ID: u.ID}
	require.NoError(t, db.Create(c).Error)
	return &actor.Actor{User: u, Candidate: c}
}

func seedRecruiter(t *testing.T, db *gorm.DB, email, company string) *actor.Actor {
	t.Helper()
	u := &models.User{
		Email:     email,
		Password:  "not-a-real-hash",
		FirstName: "Moussa",
		LastName:  "Ndiaye",
		Role:      models.RoleRecruiter,
		Status:    models.UserStatusActive,
	}
	require.NoError(t, db.Create(u).Error)
	valid := time.Now().AddDate(0, 0, 30)
	r := &models.Recruiter{
		ID:                     u.ID,
		CompanyName:            company,
		PaymentStatus:          models.PaymentStatusActive,
		SubscriptionValidUntil: &valid,
	}
	require.NoError(t, db.Create(r).Error)
	return &actor.Actor{User: u, Recruiter: r}
}

func seedPublishedJob(t *testing.T, db *gorm.DB, recruiter *actor.Actor, title string) *models.JobOffer {
	t.Helper()
	now := time.Now()
	job := &models.JobOffer{
		RecruiterID:  recruiter.ID(),
		Title:        title,
		Description:  "Description du poste.",
		ContractType: models.ContractCDI,
		Status:       models.JobStatusPublished,
		PublishedAt:  &now,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
