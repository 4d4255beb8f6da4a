package client

import "strings"

// JobFilter narrows a job collection. Zero values (and the "all" sentinel
// for JobType) mean "no filter on that dimension".
type JobFilter struct {
	// SearchTerm matches case-insensitively as a substring of title,
	// company, description or location; any field qualifies.
	SearchTerm string
	// JobType restricts to exact tag equality.
	JobType JobType
	// Location restricts to jobs whose location contains the value as a
	// case-insensitive substring. Location is a free-text box on the
	// dashboard, so it matches like SearchTerm rather than like JobType.
	Location string
}

// FilterJobs returns the jobs matching every set dimension of f. It is
// pure: rerun it whenever the job set or a filter value changes. With no
// filters set the input is returned unchanged.
func FilterJobs(jobs []Job, f JobFilter) []Job {
	if f.SearchTerm == "" && (f.JobType == "" || f.JobType == JobTypeAll) && f.Location == "" {
		return jobs
	}

	results := make([]Job, 0, len(jobs))
	term := strings.ToLower(f.SearchTerm)
	location := strings.ToLower(f.Location)

	for _, job := range jobs {
		if term != "" && !matchesTerm(job, term) {
			continue
		}
		if f.JobType != "" && f.JobType != JobTypeAll && job.JobType != f.JobType {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		results = append(results, job)
	}
	return results
}

func matchesTerm(job Job, term string) bool {
	return strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.Company), term) ||
		strings.Contains(strings.ToLower(job.Description), term) ||
		strings.Contains(strings.ToLower(job.Location), term)
}
