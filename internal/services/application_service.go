package services

import (
	"encoding/json"
	"time"

	"jobboard/internal/appErrors"
	"jobboard/internal/logger"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
)

type ApplicationService interface {
	Apply(jobID string, req *dto.ApplyRequest) (*models.Application, error)
	UserApplications(userID string) ([]models.Application, error)
	JobApplications(employerID, jobID string) ([]models.Application, error)
	UpdateStatus(actorID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	appRepo    repositories.ApplicationRepository
	jobRepo    repositories.JobRepository
	resumeRepo repositories.ResumeRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	resumeRepo repositories.ResumeRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
	}
}

// Apply creates the application joining one job, one seeker and one resume.
// The resume is validated at creation time only.
func (s *ApplicationServiceImpl) Apply(jobID string, req *dto.ApplyRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if job.Status != models.JobStatusActive {
		return nil, appErrors.ErrJobNotActive
	}

	resume, err := s.resumeRepo.FindByID(req.ResumeID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, appErrors.ErrResumeNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if resume.UserID != req.UserID {
		return nil, appErrors.ErrNotResumeOwner
	}

	app := &models.Application{
		JobID:    jobID,
		UserID:   req.UserID,
		ResumeID: req.ResumeID,
		Status:   models.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(app); err != nil {
		if appErrors.Is(err, repositories.ErrApplicationExists) {
			return nil, appErrors.ErrAlreadyApplied
		}
		return nil, appErrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) UserApplications(userID string) ([]models.Application, error) {
	apps, err := s.appRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return apps, nil
}

// JobApplications lists applicants for one posting; restricted to its owner.
func (s *ApplicationServiceImpl) JobApplications(employerID, jobID string) ([]models.Application, error) {
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

	apps, err := s.appRepo.FindByJob(jobID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return apps, nil
}

// UpdateStatus sets any status from any status. Employers may revert a
// decision, so there is no transition table; every change is appended to
// the audit trail. A notes value, when present, replaces the prior notes
// (empty string clears them).
func (s *ApplicationServiceImpl) UpdateStatus(actorID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if !models.ValidApplicationStatus(req.Status) {
		return nil, appErrors.ErrInvalidStatus
	}

	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(app.JobID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if job.EmployerID != actorID {
		return nil, appErrors.ErrNotJobOwner
	}

	if app.Status != req.Status {
		var history []models.StatusChange
		if len(app.StatusHistory) > 0 {
			if err := json.Unmarshal(app.StatusHistory, &history); err != nil {
				logger.Warn("Unreadable status history, starting a fresh trail",
					"applicationId", app.ID, "error", err)
			}
		}
		history = append(history, models.StatusChange{
			From:      app.Status,
			To:        req.Status,
			ChangedAt: time.Now().UTC(),
			ActorID:   actorID,
		})
		raw, err := json.Marshal(history)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		app.StatusHistory = raw
		app.Status = req.Status
	}

	if req.Notes != nil {
		app.Notes = *req.Notes
	}

	if err := s.appRepo.Update(app); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return app, nil
}
