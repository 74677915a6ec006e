package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
)

func TestSaveJobOncePerCandidate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db, NewNotificationService(db, nil))

	recruiter := seedRecruiter(t, db, "rh@terangatech.sn", "Teranga Tech")
	job := seedPublishedJob(t, db, recruiter, "Ingénieur Backend Go")
	fatou := seedCandidate(t, db, "fatou@example.sn", "Fatou", "Sall")
	ousmane := seedCandidate(t, db, "ousmane@example.sn", "Ousmane", "Fall")

	saved, err := svc.SaveJob(fatou, job.ID.String())
	require.NoError(t, err)
	assert.Equal(t, fatou.ID(), saved.CandidateID)

	t.Run("saving the same job again is rejected", func(t *testing.T) {
		_, err := svc.SaveJob(fatou, job.ID.String())
		assert.ErrorIs(t, err, ErrAlreadySaved)
	})

	t.Run("another candidate cannot remove the bookmark", func(t *testing.T) {
		err := svc.UnsaveJob(ousmane, saved.ID.String())
		assert.ErrorIs(t, err, ErrNotFound)

		items, meta, err := svc.ListSavedJobs(fatou, 1, 20)
		require.NoError(t, err)
		assert.EqualValues(t, 1, meta.Total)
		assert.Equal(t, job.ID, items[0].JobOfferID)
	})
}

func TestJobListOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobService(db, NewNotificationService(db, nil))

	recruiter := seedRecruiter(t, db, "rh@terangatech.sn", "Teranga Tech")

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)
	first := &models.JobOffer{
		RecruiterID:  recruiter.ID(),
		Title:        "Comptable",
		Description:  "Description du poste.",
		ContractType: models.ContractCDD,
		Status:       models.JobStatusPublished,
		PublishedAt:  &older,
	}
	require.NoError(t, db.Create(first).Error)
	second := &models.JobOffer{
		RecruiterID:  recruiter.ID(),
		Title:        "Chef de Projet",
		Description:  "Description du poste.",
		ContractType: models.ContractCDI,
		Status:       models.JobStatusPublished,
		PublishedAt:  &newer,
	}
	require.NoError(t, db.Create(second).Error)
	draft := &models.JobOffer{
		RecruiterID:  recruiter.ID(),
		Title:        "Stagiaire Marketing",
		Description:  "Description du poste.",
		ContractType: models.ContractInternship,
		Status:       models.JobStatusDraft,
	}
	require.NoError(t, db.Create(draft).Error)

	t.Run("most recently published first", func(t *testing.T) {
		jobs, meta, err := svc.List(nil, &dto.JobFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 2, meta.Total)
		require.Len(t, jobs, 2)
		assert.Equal(t, second.ID, jobs[0].ID)
		assert.Equal(t, first.ID, jobs[1].ID)
	})

	t.Run("unpublished drafts sort after published jobs for the owner", func(t *testing.T) {
		jobs, _, err := svc.List(recruiter, &dto.JobFilter{})
		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.Equal(t, second.ID, jobs[0].ID)
		assert.Equal(t, first.ID, jobs[1].ID)
		assert.Equal(t, draft.ID, jobs[2].ID)
	})
}
