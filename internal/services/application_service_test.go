package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

func TestApplyOncePerJob(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db, NewNotificationService(db, nil))

	recruiter := seedRecruiter(t, db, "recruteur@terangatech.sn", "Teranga Tech")
	job := seedPublishedJob(t, db, recruiter, "Ingénieur Backend Go")
	fatou := seedCandidate(t, db, "fatou@example.sn", "Fatou", "Sall")
	ousmane := seedCandidate(t, db, "ousmane@example.sn", "Ousmane", "Fall")

	req := &dto.ApplyRequest{JobOfferID: job.ID.String(), CoverLetter: "Madame, Monsieur,"}

	app, err := svc.Apply(fatou, req)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationSubmitted, app.Status)
	assert.Equal(t, fatou.ID(), app.CandidateID)

	t.Run("second application to the same job is rejected", func(t *testing.T) {
		_, err := svc.Apply(fatou, req)
		assert.ErrorIs(t, err, ErrAlreadyApplied)
	})

	t.Run("counter tracks one increment per stored application", func(t *testing.T) {
		var reloaded models.JobOffer
		require.NoError(t, db.First(&reloaded, "id = ?", job.ID).Error)
		assert.Equal(t, 1, reloaded.ApplicationsCount, "rejected duplicate must not bump the counter")

		_, err := svc.Apply(ousmane, &dto.ApplyRequest{JobOfferID: job.ID.String()})
		require.NoError(t, err)

		require.NoError(t, db.First(&reloaded, "id = ?", job.ID).Error)
		assert.Equal(t, 2, reloaded.ApplicationsCount)
	})
}

func TestApplicationListScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := NewApplicationService(db, NewNotificationService(db, nil))

	recruiterA := seedRecruiter(t, db, "rh@terangatech.sn", "Teranga Tech")
	recruiterB := seedRecruiter(t, db, "rh@dakardigital.sn", "Dakar Digital")
	jobA := seedPublishedJob(t, db, recruiterA, "Développeur Mobile")
	jobB := seedPublishedJob(t, db, recruiterB, "Data Analyst")

	fatou := seedCandidate(t, db, "fatou@example.sn", "Fatou", "Sall")
	ousmane := seedCandidate(t, db, "ousmane@example.sn", "Ousmane", "Fall")

	_, err := svc.Apply(fatou, &dto.ApplyRequest{JobOfferID: jobA.ID.String()})
	require.NoError(t, err)
	_, err = svc.Apply(fatou, &dto.ApplyRequest{JobOfferID: jobB.ID.String()})
	require.NoError(t, err)
	_, err = svc.Apply(ousmane, &dto.ApplyRequest{JobOfferID: jobA.ID.String()})
	require.NoError(t, err)

	t.Run("candidate sees only their own applications", func(t *testing.T) {
		apps, meta, err := svc.List(fatou, "", 1, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 2, meta.Total)
		for _, app := range apps {
			assert.Equal(t, fatou.ID(), app.CandidateID)
		}

		apps, meta, err = svc.List(ousmane, "", 1, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 1, meta.Total)
		assert.Equal(t, ousmane.ID(), apps[0].CandidateID)
	})

	t.Run("recruiter sees only applications to their own jobs", func(t *testing.T) {
		apps, meta, err := svc.List(recruiterA, "", 1, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 2, meta.Total)
		for _, app := range apps {
			assert.Equal(t, jobA.ID, app.JobOfferID)
		}

		apps, meta, err = svc.List(recruiterB, "", 1, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 1, meta.Total)
		assert.Equal(t, jobB.ID, apps[0].JobOfferID)
	})

	t.Run("another candidate's application reads as not found", func(t *testing.T) {
		apps, _, err := svc.List(fatou, "", 1, 20)
		require.NoError(t, err)
		var foreign *models.Application
		for i := range apps {
			if apps[i].JobOfferID == jobA.ID {
				foreign = &apps[i]
			}
		}
		require.NotNil(t, foreign)

		_, err = svc.Get(ousmane, foreign.ID.String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
