package activity

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/domain/auth"
	"github.com/fieldteam/attendance-backend-go/internal/domain/report"
	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

type ActivityServiceImpl struct {
	report.DailyReportRepository
	report.HourlyReportRepository
	report.MinutesRepository
}

func NewActivityService(
	dailyRepository report.DailyReportRepository,
	hourlyRepository report.HourlyReportRepository,
	minutesRepository report.MinutesRepository,
) report.ActivityService {
	return &ActivityServiceImpl{
		DailyReportRepository:  dailyRepository,
		HourlyReportRepository: hourlyRepository,
		MinutesRepository:      minutesRepository,
	}
}

// ListActivities implements report.ActivityService.
//
// Daily and hourly rows come from two independent reads; a report
// inserted between them can be missed for one page. Accepted window, no
// compensation.
func (s *ActivityServiceImpl) ListActivities(ctx context.Context, ident auth.Identity, page, limit string) (report.ActivityPage, error) {
	pageNum := parsePositiveInt(page, defaultPage)
	limitNum := parsePositiveInt(limit, defaultLimit)

	var (
		daily  []report.DailyReport
		hourly []report.HourlyReport
		err    error
	)

	if user.RoleCanViewAllReports(ident.Role) {
		daily, err = s.DailyReportRepository.ListAll(ctx)
		if err != nil {
			return report.ActivityPage{}, fmt.Errorf("failed to list daily reports: %w", err)
		}
		hourly, err = s.HourlyReportRepository.ListAll(ctx)
		if err != nil {
			return report.ActivityPage{}, fmt.Errorf("failed to list hourly reports: %w", err)
		}
	} else {
		daily, err = s.DailyReportRepository.ListVisibleTo(ctx, ident.UserID, ident.Username)
		if err != nil {
			return report.ActivityPage{}, fmt.Errorf("failed to list daily reports: %w", err)
		}
		hourly, err = s.HourlyReportRepository.ListByUser(ctx, ident.UserID)
		if err != nil {
			return report.ActivityPage{}, fmt.Errorf("failed to list hourly reports: %w", err)
		}
	}

	items := make([]report.ActivityItem, 0, len(daily)+len(hourly))
	for _, d := range daily {
		items = append(items, report.NewDailyActivity(d))
	}
	for _, h := range hourly {
		items = append(items, report.NewHourlyActivity(h))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	total := len(items)
	offset := (pageNum - 1) * limitNum
	if offset > total {
		offset = total
	}
	end := offset + limitNum
	if end > total {
		end = total
	}

	return report.ActivityPage{
		Items:      items[offset:end],
		Page:       pageNum,
		Limit:      limitNum,
		TotalItems: total,
	}, nil
}

// Summary implements report.ActivityService.
func (s *ActivityServiceImpl) Summary(ctx context.Context, ident auth.Identity) (report.Summary, error) {
	var (
		dailyCount  int
		hourlyCount int
		err         error
	)

	if user.RoleCanViewAllReports(ident.Role) {
		dailyCount, err = s.DailyReportRepository.CountAll(ctx)
		if err != nil {
			return report.Summary{}, fmt.Errorf("failed to count daily reports: %w", err)
		}
		hourlyCount, err = s.HourlyReportRepository.CountAll(ctx)
		if err != nil {
			return report.Summary{}, fmt.Errorf("failed to count hourly reports: %w", err)
		}
	} else {
		dailyCount, err = s.DailyReportRepository.CountVisibleTo(ctx, ident.UserID, ident.Username)
		if err != nil {
			return report.Summary{}, fmt.Errorf("failed to count daily reports: %w", err)
		}
		hourlyCount, err = s.HourlyReportRepository.CountByUser(ctx, ident.UserID)
		if err != nil {
			return report.Summary{}, fmt.Errorf("failed to count hourly reports: %w", err)
		}
	}

	return report.Summary{
		DailyReports:  dailyCount,
		HourlyReports: hourlyCount,
		TotalReports:  dailyCount + hourlyCount,
	}, nil
}

// CreateMinutes implements report.ActivityService.
func (s *ActivityServiceImpl) CreateMinutes(ctx context.Context, ident auth.Identity, req report.CreateMinutesRequest) (report.MinutesView, error) {
	// Validate() already guarantees the date parses.
	meetingDate, _ := time.Parse("2006-01-02", req.MeetingDate)

	minutes := report.MeetingMinutes{
		UserID:          ident.UserID,
		Username:        ident.Username,
		MeetingDate:     meetingDate,
		ProjectName:     req.ProjectName,
		Attendees:       req.Attendees,
		PointsDiscussed: req.PointsDiscussed,
		Location:        req.Location,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}

	created, err := s.MinutesRepository.Create(ctx, minutes)
	if err != nil {
		return report.MinutesView{}, fmt.Errorf("failed to create meeting minutes: %w", err)
	}

	return report.NewMinutesView(created), nil
}

// ListMinutes implements report.ActivityService.
func (s *ActivityServiceImpl) ListMinutes(ctx context.Context, ident auth.Identity) ([]report.MinutesView, error) {
	var (
		minutes []report.MeetingMinutes
		err     error
	)

	if user.RoleCanViewAllReports(ident.Role) {
		minutes, err = s.MinutesRepository.ListAll(ctx)
	} else {
		minutes, err = s.MinutesRepository.ListByUser(ctx, ident.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting minutes: %w", err)
	}

	return report.NewMinutesViews(minutes), nil
}

// PrefillMinutes implements report.ActivityService.
func (s *ActivityServiceImpl) PrefillMinutes(ctx context.Context, ident auth.Identity) (report.ActivityItem, error) {
	latest, err := s.HourlyReportRepository.LatestByUser(ctx, ident.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.ActivityItem{}, report.ErrNoHourlyReports
		}
		return report.ActivityItem{}, fmt.Errorf("failed to get latest hourly report: %w", err)
	}

	return report.NewHourlyActivity(latest), nil
}

// parsePositiveInt coerces a raw query value, falling back on parse
// failure or non-positive input.
func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
