package dashboard

import "context"

// DashboardService recomputes the aggregate counts on every call; the UI
// polls this on a fixed interval, so values may trail a concurrent write
// by one refresh.
type DashboardService interface {
	GetOverview(ctx context.Context) (OverviewResponse, error)
}
