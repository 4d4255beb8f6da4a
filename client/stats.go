package client

import (
	"context"
	"net/http"
)

// EmployerStats fetches the employer's aggregate counters, computing them
// from fixtures on fallback.
func (c *Client) EmployerStats(ctx context.Context, employerID string) (*EmployerStats, error) {
	if c.mode != ModeFixture {
		var stats EmployerStats
		err := c.doJSON(ctx, http.MethodGet, "/employers/"+employerID+"/stats", nil, &stats)
		if err == nil {
			return &stats, nil
		}
		if c.mode == ModeLive {
			return nil, err
		}
		c.degraded("stats.employer", err)
	}
	return fixtureEmployerStats(employerID), nil
}

// SeekerStats fetches the seeker's aggregate counters, computing them from
// fixtures on fallback.
func (c *Client) SeekerStats(ctx context.Context, userID string) (*SeekerStats, error) {
	if c.mode != ModeFixture {
		var stats SeekerStats
		err := c.doJSON(ctx, http.MethodGet, "/users/"+userID+"/stats", nil, &stats)
		if err == nil {
			return &stats, nil
		}
		if c.mode == ModeLive {
			return nil, err
		}
		c.degraded("stats.seeker", err)
	}
	return fixtureSeekerStats(userID), nil
}
