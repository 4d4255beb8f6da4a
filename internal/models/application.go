package models

import (
	"time"

	"gorm.io/datatypes"
)

type Application struct {
	ID          string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobID       string            `gorm:"type:uuid;not null;index" json:"jobId"`
	UserID      string            `gorm:"type:uuid;not null;index" json:"userId"`
	ResumeID    string            `gorm:"type:uuid;not null" json:"resumeId"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AppliedDate time.Time         `gorm:"default:now()" json:"appliedDate"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`

	// StatusHistory keeps one entry per status change, newest last.
	StatusHistory datatypes.JSON `gorm:"type:jsonb" json:"statusHistory,omitempty"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"-"`
}

// StatusChange is a single audit entry recorded on every status update.
type StatusChange struct {
	From      ApplicationStatus `json:"from"`
	To        ApplicationStatus `json:"to"`
	ChangedAt time.Time         `json:"changedAt"`
	ActorID   string            `json:"actorId,omitempty"`
}
