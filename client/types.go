// Package client is the job board SDK: a thin REST client over the /api
// surface that degrades to built-in fixture data when the backend is
// unreachable, plus the pure job filtering and application status helpers
// the dashboards are built on.
package client

import "time"

type UserRole string
type JobType string
type JobStatus string
type ApplicationStatus string

const (
	RoleSeeker   UserRole = "seeker"
	RoleEmployer UserRole = "employer"

	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"

	// JobTypeAll is the selector sentinel meaning "no job type filter".
	JobTypeAll JobType = "all"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	StatusPending     ApplicationStatus = "pending"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusInterviewed ApplicationStatus = "interviewed"
	StatusOffered     ApplicationStatus = "offered"
	StatusRejected    ApplicationStatus = "rejected"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	UserType  UserRole  `json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
}

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       string    `json:"salary"`
	JobType      JobType   `json:"jobType"`
	PostedDate   time.Time `json:"postedDate"`
	EmployerID   string    `json:"employerId"`
	Status       JobStatus `json:"status"`
}

type Resume struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	FileName   string    `json:"fileName"`
	UploadDate time.Time `json:"uploadDate"`
	IsDefault  bool      `json:"isDefault"`
}

type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	UserID      string            `json:"userId"`
	ResumeID    string            `json:"resumeId"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate time.Time         `json:"appliedDate"`
	Notes       string            `json:"notes,omitempty"`

	// StatusHistory records one entry per status change, newest last.
	StatusHistory []StatusChange `json:"statusHistory,omitempty"`
}

type StatusChange struct {
	From      ApplicationStatus `json:"from"`
	To        ApplicationStatus `json:"to"`
	ChangedAt time.Time         `json:"changedAt"`
	ActorID   string            `json:"actorId,omitempty"`
}

type EmployerStats struct {
	TotalJobs             int64 `json:"totalJobs"`
	ActiveJobs            int64 `json:"activeJobs"`
	TotalApplications     int64 `json:"totalApplications"`
	ReviewedApplications  int64 `json:"reviewedApplications"`
	InterviewedCandidates int64 `json:"interviewedCandidates"`
}

type SeekerStats struct {
	TotalApplications    int64 `json:"totalApplications"`
	PendingApplications  int64 `json:"pendingApplications"`
	ReviewedApplications int64 `json:"reviewedApplications"`
	Interviews           int64 `json:"interviews"`
	Offers               int64 `json:"offers"`
}
