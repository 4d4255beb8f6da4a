package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// NewJob carries the fields an employer submits when posting.
type NewJob struct {
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	Salary       string  `json:"salary"`
	JobType      JobType `json:"jobType"`
}

// JobUpdate carries partial edits; nil fields are left unchanged.
type JobUpdate struct {
	Title        *string    `json:"title,omitempty"`
	Company      *string    `json:"company,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Requirements *string    `json:"requirements,omitempty"`
	Salary       *string    `json:"salary,omitempty"`
	JobType      *JobType   `json:"jobType,omitempty"`
	Status       *JobStatus `json:"status,omitempty"`
}

// Jobs lists active postings. In ModeAuto a failed request degrades to the
// fixture set instead of returning the error.
func (c *Client) Jobs(ctx context.Context) ([]Job, error) {
	if c.mode == ModeFixture {
		return fixtureJobs(), nil
	}

	var jobs []Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs", nil, &jobs); err != nil {
		if c.mode == ModeLive {
			return nil, err
		}
		c.degraded("jobs.list", err)
		return fixtureJobs(), nil
	}
	return jobs, nil
}

// JobByID returns one posting. A miss on both the backend and the fixture
// set is ErrNotFound, never a silent substitution.
func (c *Client) JobByID(ctx context.Context, id string) (*Job, error) {
	if c.mode != ModeFixture {
		var job Job
		err := c.doJSON(ctx, http.MethodGet, "/jobs/"+id, nil, &job)
		if err == nil {
			return &job, nil
		}
		if c.mode == ModeLive {
			return nil, err
		}
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		c.degraded("jobs.get", err)
	}

	for _, job := range fixtureJobs() {
		if job.ID == id {
			return &job, nil
		}
	}
	return nil, ErrNotFound
}

// EmployerJobs lists one employer's postings. The fixture fallback filters
// by the same employer scope that was requested, preserving order.
func (c *Client) EmployerJobs(ctx context.Context, employerID string) ([]Job, error) {
	if c.mode != ModeFixture {
		var jobs []Job
		err := c.doJSON(ctx, http.MethodGet, "/employers/"+employerID+"/jobs", nil, &jobs)
		if err == nil {
			return jobs, nil
		}
		if c.mode == ModeLive {
			return nil, err
		}
		c.degraded("jobs.byEmployer", err)
	}

	var owned []Job
	for _, job := range fixtureJobs() {
		if job.EmployerID == employerID {
			owned = append(owned, job)
		}
	}
	return owned, nil
}

// CreateJob posts a new job. Write failures propagate; there is no fixture
// substitution. In ModeFixture the job is synthesized locally so offline
// demos keep working.
func (c *Client) CreateJob(ctx context.Context, employerID string, req NewJob) (*Job, error) {
	if c.mode == ModeFixture {
		return &Job{
			ID:           uuid.NewString(),
			Title:        req.Title,
			Company:      req.Company,
			Location:     req.Location,
			Description:  req.Description,
			Requirements: req.Requirements,
			Salary:       req.Salary,
			JobType:      req.JobType,
			PostedDate:   time.Now().UTC(),
			EmployerID:   employerID,
			Status:       JobStatusActive,
		}, nil
	}

	var job Job
	if err := c.doJSON(ctx, http.MethodPost, "/jobs", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id string, req JobUpdate) (*Job, error) {
	if c.mode == ModeFixture {
		job, err := c.JobByID(ctx, id)
		if err != nil {
			return nil, err
		}
		applyJobUpdate(job, req)
		return job, nil
	}

	var job Job
	if err := c.doJSON(ctx, http.MethodPut, "/jobs/"+id, req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	if c.mode == ModeFixture {
		return nil
	}
	return c.doJSON(ctx, http.MethodDelete, "/jobs/"+id, nil, nil)
}

func applyJobUpdate(job *Job, req JobUpdate) {
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
		job.JobType = *req.JobType
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
}
