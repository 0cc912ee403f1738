package report

import (
	"context"

	"github.com/fieldteam/attendance-backend-go/internal/domain/auth"
)

type ActivityService interface {
	// ListActivities returns the merged daily+hourly feed visible to the
	// caller. Page and limit arrive as raw query values; parse failures
	// fall back to page 1 / limit 20.
	ListActivities(ctx context.Context, ident auth.Identity, page, limit string) (ActivityPage, error)
	Summary(ctx context.Context, ident auth.Identity) (Summary, error)

	CreateMinutes(ctx context.Context, ident auth.Identity, req CreateMinutesRequest) (MinutesView, error)
	ListMinutes(ctx context.Context, ident auth.Identity) ([]MinutesView, error)
	// PrefillMinutes returns the caller's latest hourly report, the seed
	// for the MOM form.
	PrefillMinutes(ctx context.Context, ident auth.Identity) (ActivityItem, error)
}
