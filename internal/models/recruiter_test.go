package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecruiterIsSubscriptionValid(t *testing.T) {
	now := time.Now()

	t.Run("never paid", func(t *testing.T) {
		r := &Recruiter{PaymentStatus: PaymentStatusActive}
		assert.False(t, r.IsSubscriptionValid(now))
	})

	t.Run("valid through today", func(t *testing.T) {
		today := now.Truncate(24 * time.Hour)
		r := &Recruiter{SubscriptionValidUntil: &today}
		assert.True(t, r.IsSubscriptionValid(now))
	})

	t.Run("valid in the future", func(t *testing.T) {
		until := now.AddDate(0, 0, 15)
		r := &Recruiter{SubscriptionValidUntil: &until}
		assert.True(t, r.IsSubscriptionValid(now))
	})

	t.Run("expired", func(t *testing.T) {
		until := now.AddDate(0, 0, -1).Truncate(24 * time.Hour)
		r := &Recruiter{SubscriptionValidUntil: &until}
		assert.False(t, r.IsSubscriptionValid(now))
	})
}

func TestRecruiterCanPostJobs(t *testing.T) {
	now := time.Now()
	until := now.AddDate(0, 0, 10)
	expired := now.AddDate(0, 0, -10)

	tests := []struct {
		name   string
		status string
		until  *time.Time
		want   bool
	}{
		{"active with valid subscription", PaymentStatusActive, &until, true},
		{"active but expired date", PaymentStatusActive, &expired, false},
		{"active without date", PaymentStatusActive, nil, false},
		{"pending with valid date", PaymentStatusPending, &until, false},
		{"suspended with valid date", PaymentStatusSuspended, &until, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Recruiter{PaymentStatus: tt.status, SubscriptionValidUntil: tt.until}
			assert.Equal(t, tt.want, r.CanPostJobs(now))
		})
	}
}
