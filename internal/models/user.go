package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleCandidate = "CANDIDATE"
	RoleRecruiter = "RECRUITER"
	RoleAdmin     = "ADMIN"
)

// User account statuses.
const (
	UserStatusPending   = "PENDING"
	UserStatusActive    = "ACTIVE"
	UserStatusSuspended = "SUSPENDED"
	UserStatusDeleted   = "DELETED"
)

// User is the shared account record. Exactly one role profile row
// (Candidate, Recruiter or Admin) exists per user, matching Role.
type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password      string     `gorm:"not null" json:"-"`
	FirstName     string     `gorm:"size:100;not null" json:"first_name"`
	LastName      string     `gorm:"size:100;not null" json:"last_name"`
	Phone         string     `gorm:"size:20" json:"phone,omitempty"`
	Role          string     `gorm:"size:20;not null;index" json:"role"`
	Status        string     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	EmailVerified bool       `gorm:"default:false" json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
