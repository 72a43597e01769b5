package app

import (
	"context"

	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
)

// DashboardStats summarizes a channel for the dashboard surface.
type DashboardStats struct {
	TotalViews int `json:"total_views"`
	Followers  int `json:"followers"`
	Uploads    int `json:"uploads"`
}

// ComputeDashboard derives channel stats from the catalog instead of the
// placeholder numbers the original hard-coded.
func ComputeDashboard(ctx context.Context, store content.Store, user content.User) (DashboardStats, error) {
	owned, err := store.ByOwner(ctx, user.ID)
	if err != nil {
		return DashboardStats{}, err
	}
	stats := DashboardStats{Followers: user.Followers, Uploads: len(owned)}
	for _, c := range owned {
		if c.Views != nil {
			stats.TotalViews += *c.Views
		}
	}
	return stats, nil
}
