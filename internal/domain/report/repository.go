package report

import (
	"context"
	"time"
)

type DailyReportRepository interface {
	ListAll(ctx context.Context) ([]DailyReport, error)
	// ListVisibleTo returns rows owned by the user plus legacy rows whose
	// incharge field carries the username.
	ListVisibleTo(ctx context.Context, userID, username string) ([]DailyReport, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]DailyReport, error)
	// PresenceDaysInMonth counts, per user, the distinct office/site
	// report days inside the month starting at monthStart.
	PresenceDaysInMonth(ctx context.Context, monthStart time.Time) (map[string]int, error)
	// PresenceDates returns the distinct office/site report dates for one
	// user inside [from, to].
	PresenceDates(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error)
	// UserIDsReportedOn returns the users having any daily report on the
	// given date.
	UserIDsReportedOn(ctx context.Context, date time.Time) ([]string, error)
	CountAll(ctx context.Context) (int, error)
	CountVisibleTo(ctx context.Context, userID, username string) (int, error)
}

type HourlyReportRepository interface {
	ListAll(ctx context.Context) ([]HourlyReport, error)
	ListByUser(ctx context.Context, userID string) ([]HourlyReport, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]HourlyReport, error)
	LatestByUser(ctx context.Context, userID string) (HourlyReport, error)
	CountAll(ctx context.Context) (int, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type MinutesRepository interface {
	Create(ctx context.Context, m MeetingMinutes) (MeetingMinutes, error)
	ListAll(ctx context.Context) ([]MeetingMinutes, error)
	ListByUser(ctx context.Context, userID string) ([]MeetingMinutes, error)
}
