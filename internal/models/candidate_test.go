package models

import (
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCalculateProfileCompleteness(t *testing.T) {
	t.Run("empty profile scores zero", func(t *testing.T) {
		c := &Candidate{}
		assert.Equal(t, 0, c.CalculateProfileCompleteness())
		assert.Equal(t, 0, c.ProfileCompleteness)
	})

	t.Run("full profile scores 100", func(t *testing.T) {
		min := 400000.0
		c := &Candidate{
			Bio:               strings.Repeat("x", 60),
			Skills:            pq.StringArray{"Go", "SQL", "Docker"},
			ExperienceYears:   4,
			Education:         "Master Informatique",
			CVURL:             "https://cdn.recruitsss.app/cv/1.pdf",
			ProfilePictureURL: "https://cdn.recruitsss.app/p/1.jpg",
			Location:          "Dakar",
			DesiredSalaryMin:  &min,
			LinkedinURL:       "https://linkedin.com/in/x",
			PortfolioURL:      "https://x.dev",
		}
		assert.Equal(t, 100, c.CalculateProfileCompleteness())
	})

	t.Run("short bio does not count", func(t *testing.T) {
		c := &Candidate{Bio: "too short"}
		assert.Equal(t, 0, c.CalculateProfileCompleteness())
	})

	t.Run("two skills do not count", func(t *testing.T) {
		c := &Candidate{Skills: pq.StringArray{"Go", "SQL"}}
		assert.Equal(t, 0, c.CalculateProfileCompleteness())

		c.Skills = append(c.Skills, "Docker")
		assert.Equal(t, 15, c.CalculateProfileCompleteness())
	})

	t.Run("cv carries the largest weight", func(t *testing.T) {
		c := &Candidate{CVURL: "https://cdn.recruitsss.app/cv/2.pdf"}
		assert.Equal(t, 25, c.CalculateProfileCompleteness())
	})
}
