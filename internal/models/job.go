package models

import "time"

type Job struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Company      string    `gorm:"not null" json:"company"`
	Location     string    `json:"location"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	Salary       string    `json:"salary"`
	JobType      JobType   `gorm:"type:varchar(20);not null" json:"jobType"`
	PostedDate   time.Time `gorm:"default:now()" json:"postedDate"`
	EmployerID   string    `gorm:"type:uuid;not null;index" json:"employerId"`
	Status       JobStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}
