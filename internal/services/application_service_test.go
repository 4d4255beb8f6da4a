package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"jobboard/internal/appErrors"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services/dto"
)

type fakeApplicationRepo struct {
	apps map[string]*models.Application
}

func newFakeApplicationRepo(apps ...*models.Application) *fakeApplicationRepo {
	r := &fakeApplicationRepo{apps: make(map[string]*models.Application)}
	for _, app := range apps {
		copied := *app
		r.apps[app.ID] = &copied
	}
	return r
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.UserID == app.UserID {
			return repositories.ErrApplicationExists
		}
	}
	if app.ID == "" {
		app.ID = "generated"
	}
	copied := *app
	r.apps[app.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByUser(userID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.UserID == userID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.JobID == jobID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Update(app *models.Application) error {
	if _, ok := r.apps[app.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	copied := *app
	r.apps[app.ID] = &copied
	return nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[string]*models.Job)}
	for _, job := range jobs {
		copied := *job
		r.jobs[job.ID] = &copied
	}
	return r
}

func (r *fakeJobRepo) Create(job *models.Job) error { r.jobs[job.ID] = job; return nil }

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) { return nil, nil }

func (r *fakeJobRepo) FindByEmployer(employerID string) ([]models.Job, error) { return nil, nil }

func (r *fakeJobRepo) Update(job *models.Job) error { r.jobs[job.ID] = job; return nil }

func (r *fakeJobRepo) Delete(id string) error { delete(r.jobs, id); return nil }

type fakeResumeRepo struct {
	resumes map[string]*models.Resume
}

func newFakeResumeRepo(resumes ...*models.Resume) *fakeResumeRepo {
	r := &fakeResumeRepo{resumes: make(map[string]*models.Resume)}
	for _, resume := range resumes {
		copied := *resume
		r.resumes[resume.ID] = &copied
	}
	return r
}

func (r *fakeResumeRepo) Create(resume *models.Resume) error {
	copied := *resume
	r.resumes[resume.ID] = &copied
	return nil
}

func (r *fakeResumeRepo) FindByID(id string) (*models.Resume, error) {
	resume, ok := r.resumes[id]
	if !ok {
		return nil, repositories.ErrResumeNotFound
	}
	copied := *resume
	return &copied, nil
}

func (r *fakeResumeRepo) FindByUser(userID string) ([]models.Resume, error) {
	var out []models.Resume
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			out = append(out, *resume)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) Delete(id string) error {
	if _, ok := r.resumes[id]; !ok {
		return repositories.ErrResumeNotFound
	}
	delete(r.resumes, id)
	return nil
}

func (r *fakeResumeRepo) SetDefault(userID, resumeID string) (*models.Resume, error) {
	target, ok := r.resumes[resumeID]
	if !ok || target.UserID != userID {
		return nil, repositories.ErrResumeNotFound
	}
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			resume.IsDefault = resume.ID == resumeID
		}
	}
	copied := *target
	copied.IsDefault = true
	return &copied, nil
}

func activeJob(id, employerID string) *models.Job {
	return &models.Job{ID: id, EmployerID: employerID, Status: models.JobStatusActive}
}

func TestApplyHappyPath(t *testing.T) {
	svc := NewApplicationService(
		newFakeApplicationRepo(),
		newFakeJobRepo(activeJob("job-1", "emp-1")),
		newFakeResumeRepo(&models.Resume{ID: "res-1", UserID: "user-1"}),
	)

	app, err := svc.Apply("job-1", &dto.ApplyRequest{UserID: "user-1", ResumeID: "res-1"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, "job-1", app.JobID)
}

func TestApplyValidation(t *testing.T) {
	closedJob := &models.Job{ID: "job-2", EmployerID: "emp-1", Status: models.JobStatusClosed}

	tests := []struct {
		name    string
		jobID   string
		req     *dto.ApplyRequest
		wantErr *appErrors.AppError
	}{
		{
			name:    "unknown job",
			jobID:   "missing",
			req:     &dto.ApplyRequest{UserID: "user-1", ResumeID: "res-1"},
			wantErr: appErrors.ErrJobNotFound,
		},
		{
			name:    "closed job",
			jobID:   "job-2",
			req:     &dto.ApplyRequest{UserID: "user-1", ResumeID: "res-1"},
			wantErr: appErrors.ErrJobNotActive,
		},
		{
			name:    "unknown resume",
			jobID:   "job-1",
			req:     &dto.ApplyRequest{UserID: "user-1", ResumeID: "missing"},
			wantErr: appErrors.ErrResumeNotFound,
		},
		{
			name:    "resume owned by someone else",
			jobID:   "job-1",
			req:     &dto.ApplyRequest{UserID: "user-1", ResumeID: "res-other"},
			wantErr: appErrors.ErrNotResumeOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewApplicationService(
				newFakeApplicationRepo(),
				newFakeJobRepo(activeJob("job-1", "emp-1"), closedJob),
				newFakeResumeRepo(
					&models.Resume{ID: "res-1", UserID: "user-1"},
					&models.Resume{ID: "res-other", UserID: "user-2"},
				),
			)

			_, err := svc.Apply(tt.jobID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyTwiceRejected(t *testing.T) {
	svc := NewApplicationService(
		newFakeApplicationRepo(),
		newFakeJobRepo(activeJob("job-1", "emp-1")),
		newFakeResumeRepo(&models.Resume{ID: "res-1", UserID: "user-1"}),
	)

	_, err := svc.Apply("job-1", &dto.ApplyRequest{UserID: "user-1", ResumeID: "res-1"})
	require.NoError(t, err)

	_, err = svc.Apply("job-1", &dto.ApplyRequest{UserID: "user-1", ResumeID: "res-1"})
	assert.ErrorIs(t, err, appErrors.ErrAlreadyApplied)
}

func TestUpdateStatusUnrestrictedTransitions(t *testing.T) {
	tests := []struct {
		name string
		from models.ApplicationStatus
		to   models.ApplicationStatus
	}{
		{"forward", models.ApplicationStatusPending, models.ApplicationStatusReviewed},
		{"skip", models.ApplicationStatusPending, models.ApplicationStatusOffered},
		{"revert rejection", models.ApplicationStatusRejected, models.ApplicationStatusPending},
		{"backward", models.ApplicationStatusInterviewed, models.ApplicationStatusReviewed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewApplicationService(
				newFakeApplicationRepo(&models.Application{
					ID: "app-1", JobID: "job-1", UserID: "user-1", Status: tt.from,
				}),
				newFakeJobRepo(activeJob("job-1", "emp-1")),
				newFakeResumeRepo(),
			)

			app, err := svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{Status: tt.to})
			require.NoError(t, err)
			assert.Equal(t, tt.to, app.Status)

			var history []models.StatusChange
			require.NoError(t, json.Unmarshal(app.StatusHistory, &history))
			require.Len(t, history, 1)
			assert.Equal(t, tt.from, history[0].From)
			assert.Equal(t, tt.to, history[0].To)
			assert.Equal(t, "emp-1", history[0].ActorID)
		})
	}
}

func TestUpdateStatusAppendsToHistory(t *testing.T) {
	svc := NewApplicationService(
		newFakeApplicationRepo(&models.Application{
			ID: "app-1", JobID: "job-1", UserID: "user-1", Status: models.ApplicationStatusPending,
		}),
		newFakeJobRepo(activeJob("job-1", "emp-1")),
		newFakeResumeRepo(),
	)

	_, err := svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusReviewed,
	})
	require.NoError(t, err)

	app, err := svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusRejected,
	})
	require.NoError(t, err)

	var history []models.StatusChange
	require.NoError(t, json.Unmarshal(app.StatusHistory, &history))
	require.Len(t, history, 2)
	assert.Equal(t, models.ApplicationStatusReviewed, history[1].From)
	assert.Equal(t, models.ApplicationStatusRejected, history[1].To)
}

func TestUpdateStatusRebuildsCorruptHistory(t *testing.T) {
	svc := NewApplicationService(
		newFakeApplicationRepo(&models.Application{
			ID: "app-1", JobID: "job-1", UserID: "user-1",
			Status:        models.ApplicationStatusPending,
			StatusHistory: datatypes.JSON("{not json"),
		}),
		newFakeJobRepo(activeJob("job-1", "emp-1")),
		newFakeResumeRepo(),
	)

	app, err := svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusReviewed,
	})
	require.NoError(t, err)

	var history []models.StatusChange
	require.NoError(t, json.Unmarshal(app.StatusHistory, &history))
	require.Len(t, history, 1)
	assert.Equal(t, models.ApplicationStatusPending, history[0].From)
	assert.Equal(t, models.ApplicationStatusReviewed, history[0].To)
}

func TestUpdateStatusSameStatusKeepsHistory(t *testing.T) {
	svc := NewApplicationService(
		newFakeApplicationRepo(&models.Application{
			ID: "app-1", JobID: "job-1", UserID: "user-1", Status: models.ApplicationStatusReviewed,
		}),
		newFakeJobRepo(activeJob("job-1", "emp-1")),
		newFakeResumeRepo(),
	)

	app, err := svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusReviewed,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusReviewed, app.Status)
	assert.Empty(t, app.StatusHistory)
}

func TestUpdateStatusNotes(t *testing.T) {
	notes := "strong portfolio"
	svc := NewApplicationService(
		newFakeApplicationRepo(&models.Application{
			ID: "app-1", JobID: "job-1", UserID: "user-1",
			Status: models.ApplicationStatusPending, Notes: "old note",
		}),
		newFakeJobRepo(activeJob("job-1", "emp-1")),
		newFakeResumeRepo(),
	)

	app, err := svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusReviewed,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "strong portfolio", app.Notes)

	// Omitted notes leave the stored value alone.
	app, err = svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusInterviewed,
	})
	require.NoError(t, err)
	assert.Equal(t, "strong portfolio", app.Notes)

	// An explicit empty string clears them.
	empty := ""
	app, err = svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusOffered,
		Notes:  &empty,
	})
	require.NoError(t, err)
	assert.Empty(t, app.Notes)
}

func TestUpdateStatusAuthorization(t *testing.T) {
	svc := NewApplicationService(
		newFakeApplicationRepo(&models.Application{
			ID: "app-1", JobID: "job-1", UserID: "user-1", Status: models.ApplicationStatusPending,
		}),
		newFakeJobRepo(activeJob("job-1", "emp-1")),
		newFakeResumeRepo(),
	)

	_, err := svc.UpdateStatus("emp-2", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusReviewed,
	})
	assert.ErrorIs(t, err, appErrors.ErrNotJobOwner)

	_, err = svc.UpdateStatus("emp-1", "missing", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusReviewed,
	})
	assert.ErrorIs(t, err, appErrors.ErrApplicationNotFound)

	_, err = svc.UpdateStatus("emp-1", "app-1", &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatus("archived"),
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidStatus)
}

func TestJobApplicationsOwnerOnly(t *testing.T) {
	svc := NewApplicationService(
		newFakeApplicationRepo(&models.Application{
			ID: "app-1", JobID: "job-1", UserID: "user-1", Status: models.ApplicationStatusPending,
		}),
		newFakeJobRepo(activeJob("job-1", "emp-1")),
		newFakeResumeRepo(),
	)

	apps, err := svc.JobApplications("emp-1", "job-1")
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = svc.JobApplications("emp-2", "job-1")
	assert.ErrorIs(t, err, appErrors.ErrNotJobOwner)
}
