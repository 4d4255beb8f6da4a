package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type applyRequest struct {
	UserID   string `json:"userId"`
	ResumeID string `json:"resumeId"`
}

type statusUpdateRequest struct {
	Status ApplicationStatus `json:"status"`
	Notes  *string           `json:"notes,omitempty"`
}

// UserApplications lists one seeker's applications, degrading to the
// fixture set scoped to that user.
func (c *Client) UserApplications(ctx context.Context, userID string) ([]Application, error) {
	if c.mode != ModeFixture {
		var apps []Application
		err := c.doJSON(ctx, http.MethodGet, "/users/"+userID+"/applications", nil, &apps)
		if err == nil {
			return apps, nil
		}
		if c.mode == ModeLive {
			return nil, err
		}
		c.degraded("applications.byUser", err)
	}

	var owned []Application
	for _, app := range fixtureApplications() {
		if app.UserID == userID {
			owned = append(owned, app)
		}
	}
	return owned, nil
}

// JobApplications lists the applicants for one posting.
func (c *Client) JobApplications(ctx context.Context, jobID string) ([]Application, error) {
	if c.mode != ModeFixture {
		var apps []Application
		err := c.doJSON(ctx, http.MethodGet, "/jobs/"+jobID+"/applications", nil, &apps)
		if err == nil {
			return apps, nil
		}
		if c.mode == ModeLive {
			return nil, err
		}
		c.degraded("applications.byJob", err)
	}

	var forJob []Application
	for _, app := range fixtureApplications() {
		if app.JobID == jobID {
			forJob = append(forJob, app)
		}
	}
	return forJob, nil
}

// Apply creates an application joining one job, one seeker and one resume.
// The resume reference is fixed at creation and not re-validated later.
func (c *Client) Apply(ctx context.Context, jobID, userID, resumeID string) (*Application, error) {
	if c.mode == ModeFixture {
		return &Application{
			ID:          uuid.NewString(),
			JobID:       jobID,
			UserID:      userID,
			ResumeID:    resumeID,
			Status:      StatusPending,
			AppliedDate: time.Now().UTC(),
		}, nil
	}

	req := applyRequest{UserID: userID, ResumeID: resumeID}
	var app Application
	if err := c.doJSON(ctx, http.MethodPost, "/jobs/"+jobID+"/apply", req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateApplicationStatus pushes a status change (and optionally replaced
// notes) to the backend. Unlike the in-memory SetStatus/SetNotes helpers
// this persists the edit; failures propagate to the caller.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, status ApplicationStatus, notes *string) (*Application, error) {
	if c.mode == ModeFixture {
		for _, app := range fixtureApplications() {
			if app.ID == id {
				app = SetStatus(app, status, "")
				if notes != nil {
					app = SetNotes(app, *notes)
				}
				return &app, nil
			}
		}
		return nil, ErrNotFound
	}

	req := statusUpdateRequest{Status: status, Notes: notes}
	var app Application
	if err := c.doJSON(ctx, http.MethodPut, "/applications/"+id+"/status", req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
