package client

import "time"

// Fixture data served when the backend is unavailable. Generators return a
// fresh slice on every call; fallback reads re-filter the full set each
// time and nothing is cached.

func fixtureTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("bad fixture timestamp: " + value)
	}
	return t
}

func fixtureJobs() []Job {
	return []Job{
		{
			ID:           "1",
			Title:        "Senior Frontend Developer",
			Company:      "TechCorp Inc.",
			Location:     "New York, NY",
			Description:  "We are looking for an experienced Frontend Developer to join our team.",
			Requirements: "5+ years of experience with React, TypeScript, and modern frontend frameworks.",
			Salary:       "$120,000 - $150,000",
			JobType:      JobTypeFullTime,
			PostedDate:   fixtureTime("2023-06-15T00:00:00Z"),
			EmployerID:   "2",
			Status:       JobStatusActive,
		},
		{
			ID:           "2",
			Title:        "Backend Engineer",
			Company:      "TechCorp Inc.",
			Location:     "Remote",
			Description:  "Join our backend team to build scalable APIs and services.",
			Requirements: "Experience with Node.js, Python, and database design.",
			Salary:       "$110,000 - $140,000",
			JobType:      JobTypeFullTime,
			PostedDate:   fixtureTime("2023-06-10T00:00:00Z"),
			EmployerID:   "2",
			Status:       JobStatusActive,
		},
		{
			ID:           "3",
			Title:        "DevOps Specialist",
			Company:      "CloudSystems LLC",
			Location:     "Seattle, WA",
			Description:  "Help us build and maintain our cloud infrastructure.",
			Requirements: "Experience with AWS, Docker, Kubernetes, and CI/CD pipelines.",
			Salary:       "$130,000 - $160,000",
			JobType:      JobTypeFullTime,
			PostedDate:   fixtureTime("2023-06-05T00:00:00Z"),
			EmployerID:   "3",
			Status:       JobStatusActive,
		},
		{
			ID:           "4",
			Title:        "UX/UI Designer",
			Company:      "DesignHub",
			Location:     "San Francisco, CA",
			Description:  "Create beautiful and intuitive user interfaces for our products.",
			Requirements: "Portfolio showcasing UX/UI work, experience with Figma and Adobe Suite.",
			Salary:       "$90,000 - $120,000",
			JobType:      JobTypeFullTime,
			PostedDate:   fixtureTime("2023-06-01T00:00:00Z"),
			EmployerID:   "3",
			Status:       JobStatusActive,
		},
		{
			ID:           "5",
			Title:        "Data Scientist",
			Company:      "TechCorp Inc.",
			Location:     "Boston, MA",
			Description:  "Analyze large datasets and build predictive models.",
			Requirements: "Experience with Python, R, and machine learning frameworks.",
			Salary:       "$125,000 - $155,000",
			JobType:      JobTypeFullTime,
			PostedDate:   fixtureTime("2023-05-28T00:00:00Z"),
			EmployerID:   "2",
			Status:       JobStatusActive,
		},
	}
}

func fixtureApplications() []Application {
	return []Application{
		{
			ID:          "1",
			JobID:       "1",
			UserID:      "1",
			ResumeID:    "1",
			Status:      StatusReviewed,
			AppliedDate: fixtureTime("2023-06-16T00:00:00Z"),
			Notes:       "Strong candidate, schedule interview",
		},
		{
			ID:          "2",
			JobID:       "2",
			UserID:      "1",
			ResumeID:    "1",
			Status:      StatusPending,
			AppliedDate: fixtureTime("2023-06-17T00:00:00Z"),
		},
		{
			ID:          "3",
			JobID:       "5",
			UserID:      "1",
			ResumeID:    "2",
			Status:      StatusInterviewed,
			AppliedDate: fixtureTime("2023-06-10T00:00:00Z"),
			Notes:       "Great interview, considering offer",
		},
		{
			ID:          "4",
			JobID:       "3",
			UserID:      "1",
			ResumeID:    "1",
			Status:      StatusRejected,
			AppliedDate: fixtureTime("2023-05-30T00:00:00Z"),
			Notes:       "Not enough experience with required technologies",
		},
		{
			ID:          "5",
			JobID:       "5",
			UserID:      "3",
			ResumeID:    "3",
			Status:      StatusPending,
			AppliedDate: fixtureTime("2023-06-15T00:00:00Z"),
		},
	}
}

func fixtureResumes() []Resume {
	return []Resume{
		{
			ID:         "1",
			UserID:     "1",
			Title:      "Software Developer Resume",
			FileName:   "resume_software_dev.pdf",
			UploadDate: fixtureTime("2023-05-15T00:00:00Z"),
			IsDefault:  true,
		},
		{
			ID:         "2",
			UserID:     "1",
			Title:      "Data Science Resume",
			FileName:   "resume_data_science.pdf",
			UploadDate: fixtureTime("2023-05-20T00:00:00Z"),
			IsDefault:  false,
		},
		{
			ID:         "3",
			UserID:     "3",
			Title:      "Frontend Developer Resume",
			FileName:   "resume_frontend.pdf",
			UploadDate: fixtureTime("2023-06-01T00:00:00Z"),
			IsDefault:  true,
		},
	}
}

func fixtureEmployerStats(employerID string) *EmployerStats {
	jobs := fixtureJobs()
	apps := fixtureApplications()

	jobsByID := make(map[string]Job, len(jobs))
	stats := &EmployerStats{}
	for _, job := range jobs {
		if job.EmployerID != employerID {
			continue
		}
		jobsByID[job.ID] = job
		stats.TotalJobs++
		if job.Status == JobStatusActive {
			stats.ActiveJobs++
		}
	}
	for _, app := range apps {
		if _, owned := jobsByID[app.JobID]; !owned {
			continue
		}
		stats.TotalApplications++
		switch app.Status {
		case StatusReviewed:
			stats.ReviewedApplications++
		case StatusInterviewed:
			stats.InterviewedCandidates++
		}
	}
	return stats
}

func fixtureSeekerStats(userID string) *SeekerStats {
	stats := &SeekerStats{}
	for _, app := range fixtureApplications() {
		if app.UserID != userID {
			continue
		}
		stats.TotalApplications++
		switch app.Status {
		case StatusPending:
			stats.PendingApplications++
		case StatusReviewed:
			stats.ReviewedApplications++
		case StatusInterviewed:
			stats.Interviews++
		case StatusOffered:
			stats.Offers++
		}
	}
	return stats
}
