package dto

import "jobboard/internal/models"

type ApplyRequest struct {
	UserID   string `json:"userId" validate:"required"`
	ResumeID string `json:"resumeId" validate:"required"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=pending reviewed interviewed offered rejected"`
	Notes  *string                  `json:"notes,omitempty"`
}

type UploadResumeRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	IsDefault bool   `json:"isDefault"`
}
