package models

type UserRole string
type JobType string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleSeeker   UserRole = "seeker"
	UserRoleEmployer UserRole = "employer"

	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusOffered     ApplicationStatus = "offered"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ValidUserRole reports whether role is one of the registerable roles.
func ValidUserRole(role UserRole) bool {
	return role == UserRoleSeeker || role == UserRoleEmployer
}

// ValidJobType reports whether t is a known job type tag.
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether s is a known application status.
// Any known status may be set from any other one; employers are allowed
// to revert a decision, so there is no transition table.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusInterviewed, ApplicationStatusOffered,
		ApplicationStatusRejected:
		return true
	}
	return false
}
