package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobIDs(jobs []Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	return ids
}

func TestFilterJobs(t *testing.T) {
	jobs := fixtureJobs()

	tests := []struct {
		name    string
		filter  JobFilter
		wantIDs []string
	}{
		{
			name:    "no filters returns everything",
			filter:  JobFilter{},
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "all sentinel is no filter",
			filter:  JobFilter{JobType: JobTypeAll},
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "term matches title",
			filter:  JobFilter{SearchTerm: "frontend"},
			wantIDs: []string{"1"},
		},
		{
			name:    "term matches company across jobs",
			filter:  JobFilter{SearchTerm: "techcorp"},
			wantIDs: []string{"1", "2", "5"},
		},
		{
			name:    "term matches description",
			filter:  JobFilter{SearchTerm: "scalable apis"},
			wantIDs: []string{"2"},
		},
		{
			name:    "term matches location",
			filter:  JobFilter{SearchTerm: "seattle"},
			wantIDs: []string{"3"},
		},
		{
			name:    "term is case-insensitive",
			filter:  JobFilter{SearchTerm: "DATA SCIENTIST"},
			wantIDs: []string{"5"},
		},
		{
			name:    "job type exact match",
			filter:  JobFilter{JobType: JobTypeFullTime},
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "job type with no matches",
			filter:  JobFilter{JobType: JobTypeContract},
			wantIDs: []string{},
		},
		{
			name:    "location substring case-insensitive",
			filter:  JobFilter{Location: "remote"},
			wantIDs: []string{"2"},
		},
		{
			name:    "location partial substring",
			filter:  JobFilter{Location: "York"},
			wantIDs: []string{"1"},
		},
		{
			name:    "dimensions combine with AND",
			filter:  JobFilter{SearchTerm: "techcorp", Location: "boston"},
			wantIDs: []string{"5"},
		},
		{
			name:    "term plus job type narrows to one",
			filter:  JobFilter{SearchTerm: "remote", JobType: JobTypeFullTime},
			wantIDs: []string{"2"},
		},
		{
			name:    "no match on any dimension yields empty",
			filter:  JobFilter{SearchTerm: "haskell"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterJobs(jobs, tt.filter)
			assert.Equal(t, tt.wantIDs, jobIDs(got))
		})
	}
}

func TestFilterJobsDoesNotMutateInput(t *testing.T) {
	jobs := fixtureJobs()
	before := jobIDs(jobs)

	_ = FilterJobs(jobs, JobFilter{SearchTerm: "backend"})
	_ = FilterJobs(jobs, JobFilter{JobType: JobTypeContract})

	assert.Equal(t, before, jobIDs(jobs))
}

func TestFilterJobsIdentityWhenUnfiltered(t *testing.T) {
	jobs := fixtureJobs()
	got := FilterJobs(jobs, JobFilter{})
	require.Len(t, got, len(jobs))
	assert.Equal(t, jobs, got)
}
