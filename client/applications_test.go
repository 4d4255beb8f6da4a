package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationIDs(apps []Application) []string {
	ids := make([]string, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}
	return ids
}

func TestUserApplicationsFallbackKeepsScope(t *testing.T) {
	c := New(&Options{BaseURL: unreachableBaseURL})

	apps, err := c.UserApplications(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, applicationIDs(apps))

	apps, err = c.UserApplications(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, applicationIDs(apps))

	apps, err = c.UserApplications(context.Background(), "no-such-user")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestJobApplicationsFallbackKeepsScope(t *testing.T) {
	c := New(&Options{BaseURL: unreachableBaseURL})

	apps, err := c.JobApplications(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "5"}, applicationIDs(apps))
}

func TestApplySendsJobScopedRequest(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/jobs/3/apply", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "1", req["userId"])
		assert.Equal(t, "2", req["resumeId"])

		json.NewEncoder(w).Encode(Application{
			ID: "50", JobID: "3", UserID: "1", ResumeID: "2", Status: StatusPending,
		})
	})

	c := New(&Options{BaseURL: srv.URL + "/api"})

	app, err := c.Apply(context.Background(), "3", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "50", app.ID)
	assert.Equal(t, StatusPending, app.Status)
}

func TestApplyPropagatesConflict(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"error": {"code": "ALREADY_APPLIED", "message": "already applied to this job"},
		})
	})

	c := New(&Options{BaseURL: srv.URL + "/api"})

	_, err := c.Apply(context.Background(), "3", "1", "2")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "ALREADY_APPLIED", apiErr.Code)
}

func TestUpdateApplicationStatusPropagatesFailure(t *testing.T) {
	// Status changes are writes: no fixture fallback even in auto mode.
	c := New(&Options{BaseURL: unreachableBaseURL})

	_, err := c.UpdateApplicationStatus(context.Background(), "1", StatusOffered, nil)
	assert.Error(t, err)
}

func TestUpdateApplicationStatusFixtureMode(t *testing.T) {
	c := New(&Options{Mode: ModeFixture})

	notes := "moving forward"
	app, err := c.UpdateApplicationStatus(context.Background(), "2", StatusReviewed, &notes)
	require.NoError(t, err)
	assert.Equal(t, StatusReviewed, app.Status)
	assert.Equal(t, "moving forward", app.Notes)
	require.Len(t, app.StatusHistory, 1)
	assert.Equal(t, StatusPending, app.StatusHistory[0].From)

	_, err = c.UpdateApplicationStatus(context.Background(), "no-such-id", StatusReviewed, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserResumesFallbackKeepsScope(t *testing.T) {
	c := New(&Options{BaseURL: unreachableBaseURL})

	resumes, err := c.UserResumes(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, resumes, 2)
	assert.True(t, resumes[0].IsDefault)
	assert.False(t, resumes[1].IsDefault)
}
