package services

import (
	"jobboard/internal/appErrors"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
)

type JobService interface {
	ListJobs() ([]models.Job, error)
	GetJob(id string) (*models.Job, error)
	EmployerJobs(employerID string) ([]models.Job, error)
	CreateJob(employerID string, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(employerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(employerID, jobID string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) ListJobs() ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJob(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) EmployerJobs(employerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) CreateJob(employerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	if !models.ValidJobType(req.JobType) {
		return nil, appErrors.ErrInvalidJobType
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		JobType:      req.JobType,
		EmployerID:   employerID,
		Status:       models.JobStatusActive,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

// UpdateJob applies partial edits; only the owning employer may edit.
func (s *JobServiceImpl) UpdateJob(employerID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.ownedJob(employerID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.JobType != nil {
		if !models.ValidJobType(*req.JobType) {
			return nil, appErrors.ErrInvalidJobType
		}
		job.JobType = *req.JobType
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) DeleteJob(employerID, jobID string) error {
	if _, err := s.ownedJob(employerID, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) ownedJob(employerID, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, appErrors.ErrNotJobOwner
	}
	return job, nil
}
