package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// EmployerDashboard is the data an employer landing view needs, fetched
// in one call.
type EmployerDashboard struct {
	Jobs  []Job
	Stats EmployerStats
}

// SeekerDashboard is the seeker counterpart.
type SeekerDashboard struct {
	Applications []Application
	Stats        SeekerStats
}

// EmployerDashboard fetches the employer's jobs and stats concurrently.
// Each fetch degrades independently under ModeAuto; the first hard error
// cancels the other fetch.
func (c *Client) EmployerDashboard(ctx context.Context, employerID string) (*EmployerDashboard, error) {
	var dash EmployerDashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, err := c.EmployerJobs(ctx, employerID)
		if err != nil {
			return err
		}
		dash.Jobs = jobs
		return nil
	})
	g.Go(func() error {
		stats, err := c.EmployerStats(ctx, employerID)
		if err != nil {
			return err
		}
		dash.Stats = *stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

// SeekerDashboard fetches the seeker's applications and stats concurrently.
func (c *Client) SeekerDashboard(ctx context.Context, userID string) (*SeekerDashboard, error) {
	var dash SeekerDashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		apps, err := c.UserApplications(ctx, userID)
		if err != nil {
			return err
		}
		dash.Applications = apps
		return nil
	})
	g.Go(func() error {
		stats, err := c.SeekerStats(ctx, userID)
		if err != nil {
			return err
		}
		dash.Stats = *stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}
