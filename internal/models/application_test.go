package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationMarkViewed(t *testing.T) {
	now := time.Now()

	app := &Application{Status: ApplicationSubmitted}
	require.NoError(t, app.MarkViewed(now))
	assert.Equal(t, ApplicationViewed, app.Status)
	require.NotNil(t, app.ViewedAt)

	// Repeat views once past SUBMITTED are no-ops.
	app.Status = ApplicationShortlisted
	viewedAt := *app.ViewedAt
	require.NoError(t, app.MarkViewed(now.Add(time.Hour)))
	assert.Equal(t, ApplicationShortlisted, app.Status)
	assert.Equal(t, viewedAt, *app.ViewedAt)
}

func TestApplicationTerminalStatesAreImmutable(t *testing.T) {
	now := time.Now()
	future := now.Add(48 * time.Hour)

	tests := []struct {
		status  string
		wantErr error
	}{
		{ApplicationWithdrawn, ErrApplicationWithdrawn},
		{ApplicationAccepted, ErrApplicationDecided},
		{ApplicationRejected, ErrApplicationDecided},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			app := &Application{Status: tt.status}
			assert.ErrorIs(t, app.MarkViewed(now), tt.wantErr)
			assert.ErrorIs(t, app.Shortlist(now), tt.wantErr)
			assert.ErrorIs(t, app.ScheduleInterview(&future, now), tt.wantErr)
			assert.ErrorIs(t, app.Reject("no", now), tt.wantErr)
			assert.ErrorIs(t, app.Accept(now), tt.wantErr)
			assert.Equal(t, tt.status, app.Status)
		})
	}
}

func TestApplicationScheduleInterview(t *testing.T) {
	now := time.Now()

	t.Run("requires a date", func(t *testing.T) {
		app := &Application{Status: ApplicationViewed}
		assert.ErrorIs(t, app.ScheduleInterview(nil, now), ErrInterviewDateRequired)

		var zero time.Time
		assert.ErrorIs(t, app.ScheduleInterview(&zero, now), ErrInterviewDateRequired)
	})

	t.Run("rejects past dates", func(t *testing.T) {
		app := &Application{Status: ApplicationViewed}
		past := now.Add(-time.Hour)
		assert.ErrorIs(t, app.ScheduleInterview(&past, now), ErrInterviewDateInPast)
		assert.Equal(t, ApplicationViewed, app.Status)
	})

	t.Run("schedules future dates", func(t *testing.T) {
		app := &Application{Status: ApplicationShortlisted}
		future := now.Add(72 * time.Hour)
		require.NoError(t, app.ScheduleInterview(&future, now))
		assert.Equal(t, ApplicationInterviewScheduled, app.Status)
		require.NotNil(t, app.InterviewDate)
		assert.Equal(t, future, *app.InterviewDate)
		assert.NotNil(t, app.RespondedAt)
	})
}

func TestApplicationRespondedAtSetOnce(t *testing.T) {
	now := time.Now()
	app := &Application{Status: ApplicationViewed}

	require.NoError(t, app.Shortlist(now))
	require.NotNil(t, app.RespondedAt)
	first := *app.RespondedAt

	require.NoError(t, app.Accept(now.Add(time.Hour)))
	assert.Equal(t, first, *app.RespondedAt)
}

func TestApplicationRejectRecordsReason(t *testing.T) {
	now := time.Now()
	app := &Application{Status: ApplicationViewed}

	require.NoError(t, app.Reject("profil incomplet", now))
	assert.Equal(t, ApplicationRejected, app.Status)
	assert.Equal(t, "profil incomplet", app.RecruiterNotes)
}

func TestApplicationWithdraw(t *testing.T) {
	t.Run("from submitted", func(t *testing.T) {
		app := &Application{Status: ApplicationSubmitted}
		require.NoError(t, app.Withdraw())
		assert.Equal(t, ApplicationWithdrawn, app.Status)
	})

	t.Run("already withdrawn is a no-op", func(t *testing.T) {
		app := &Application{Status: ApplicationWithdrawn}
		require.NoError(t, app.Withdraw())
		assert.Equal(t, ApplicationWithdrawn, app.Status)
	})

	t.Run("decided applications cannot be withdrawn", func(t *testing.T) {
		for _, status := range []string{ApplicationAccepted, ApplicationRejected} {
			app := &Application{Status: status}
			assert.ErrorIs(t, app.Withdraw(), ErrCannotWithdraw)
			assert.Equal(t, status, app.Status)
		}
	})
}

func TestApplicationIsTerminal(t *testing.T) {
	terminal := []string{ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn}
	for _, status := range terminal {
		assert.True(t, (&Application{Status: status}).IsTerminal(), status)
	}
	open := []string{ApplicationSubmitted, ApplicationViewed, ApplicationShortlisted, ApplicationInterviewScheduled}
	for _, status := range open {
		assert.False(t, (&Application{Status: status}).IsTerminal(), status)
	}
}
