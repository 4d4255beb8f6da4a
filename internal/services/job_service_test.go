package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/appErrors"
	"jobboard/internal/models"
	"jobboard/internal/services/dto"
)

func TestCreateJob(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	job, err := svc.CreateJob("emp-1", &dto.CreateJobRequest{
		Title:    "Go Developer",
		Company:  "TechCorp Inc.",
		Location: "Remote",
		JobType:  models.JobTypeRemote,
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", job.EmployerID)
	assert.Equal(t, models.JobStatusActive, job.Status)

	_, err = svc.CreateJob("emp-1", &dto.CreateJobRequest{
		Title:   "Go Developer",
		JobType: models.JobType("gig"),
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidJobType)
}

func TestUpdateJobPartialEdit(t *testing.T) {
	repo := newFakeJobRepo(&models.Job{
		ID: "job-1", Title: "Go Developer", Company: "TechCorp Inc.",
		EmployerID: "emp-1", JobType: models.JobTypeFullTime,
		Status: models.JobStatusActive,
	})
	svc := NewJobService(repo)

	title := "Senior Go Developer"
	status := models.JobStatusClosed
	job, err := svc.UpdateJob("emp-1", "job-1", &dto.UpdateJobRequest{
		Title:  &title,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Developer", job.Title)
	assert.Equal(t, models.JobStatusClosed, job.Status)
	assert.Equal(t, "TechCorp Inc.", job.Company)
}

func TestJobOwnershipEnforced(t *testing.T) {
	repo := newFakeJobRepo(&models.Job{
		ID: "job-1", EmployerID: "emp-1", Status: models.JobStatusActive,
	})
	svc := NewJobService(repo)

	title := "hijacked"
	_, err := svc.UpdateJob("emp-2", "job-1", &dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, appErrors.ErrNotJobOwner)

	err = svc.DeleteJob("emp-2", "job-1")
	assert.ErrorIs(t, err, appErrors.ErrNotJobOwner)

	_, err = svc.UpdateJob("emp-1", "missing", &dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)

	require.NoError(t, svc.DeleteJob("emp-1", "job-1"))
}
