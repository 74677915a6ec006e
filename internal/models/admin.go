package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Admin is the role profile for platform administrators, keyed by the user id.
type Admin struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Permissions       pq.StringArray `gorm:"type:text[]" json:"permissions"`
	Department        string         `gorm:"size:100" json:"department,omitempty"`
	CanManageUsers    bool           `gorm:"default:false" json:"can_manage_users"`
	CanManageJobs     bool           `gorm:"default:false" json:"can_manage_jobs"`
	CanManagePayments bool           `gorm:"default:false" json:"can_manage_payments"`
	CanViewAnalytics  bool           `gorm:"default:true" json:"can_view_analytics"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	User              User           `gorm:"foreignKey:ID" json:"user,omitempty"`
}

func (Admin) TableName() string {
	return "admins"
}
