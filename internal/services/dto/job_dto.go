package dto

import "jobboard/internal/models"

type CreateJobRequest struct {
	Title        string         `json:"title" validate:"required,max=200"`
	Company      string         `json:"company" validate:"required,max=200"`
	Location     string         `json:"location" validate:"required,max=200"`
	Description  string         `json:"description" validate:"required"`
	Requirements string         `json:"requirements"`
	Salary       string         `json:"salary"`
	JobType      models.JobType `json:"jobType" validate:"required,oneof=full-time part-time contract remote"`
}

type UpdateJobRequest struct {
	Title        *string           `json:"title,omitempty" validate:"omitempty,max=200"`
	Company      *string           `json:"company,omitempty" validate:"omitempty,max=200"`
	Location     *string           `json:"location,omitempty" validate:"omitempty,max=200"`
	Description  *string           `json:"description,omitempty"`
	Requirements *string           `json:"requirements,omitempty"`
	Salary       *string           `json:"salary,omitempty"`
	JobType      *models.JobType   `json:"jobType,omitempty" validate:"omitempty,oneof=full-time part-time contract remote"`
	Status       *models.JobStatus `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
}
