package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/domain/attendance"
	"github.com/fieldteam/attendance-backend-go/internal/domain/auth"
	"github.com/fieldteam/attendance-backend-go/internal/domain/report"
	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

const (
	// Attendance sheets never reach further back than one year.
	maxSheetDays = 365

	recentReportLimit = 10
)

type AttendanceServiceImpl struct {
	user.UserRepository
	report.DailyReportRepository
	report.HourlyReportRepository
}

func NewAttendanceService(
	userRepository user.UserRepository,
	dailyRepository report.DailyReportRepository,
	hourlyRepository report.HourlyReportRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		UserRepository:         userRepository,
		DailyReportRepository:  dailyRepository,
		HourlyReportRepository: hourlyRepository,
	}
}

// Overview implements attendance.Service.
func (s *AttendanceServiceImpl) Overview(ctx context.Context, month string) (attendance.Overview, error) {
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return attendance.Overview{}, attendance.ErrInvalidMonth
	}

	users, err := s.UserRepository.ListAll(ctx)
	if err != nil {
		return attendance.Overview{}, fmt.Errorf("failed to list users: %w", err)
	}

	presenceByUser, err := s.DailyReportRepository.PresenceDaysInMonth(ctx, monthStart)
	if err != nil {
		return attendance.Overview{}, fmt.Errorf("failed to aggregate presence: %w", err)
	}

	now := time.Now()
	rows := make([]attendance.OverviewRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, attendance.OverviewRow{
			UserID:           u.ID,
			Username:         u.Username,
			EmployeeID:       u.EmployeeID,
			PresentDays:      presenceByUser[u.ID],
			DaysSinceJoining: u.DaysSinceJoining(now),
		})
	}

	return attendance.Overview{
		Month:     month,
		Employees: rows,
	}, nil
}

// EmployeeReport implements attendance.Service.
func (s *AttendanceServiceImpl) EmployeeReport(ctx context.Context, ident auth.Identity, employeeID string) (attendance.EmployeeReport, error) {
	target, err := s.UserRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.EmployeeReport{}, user.ErrUserNotFound
		}
		return attendance.EmployeeReport{}, fmt.Errorf("failed to get user: %w", err)
	}

	if ident.UserID != target.ID && !user.RoleCanViewAllReports(ident.Role) {
		return attendance.EmployeeReport{}, attendance.ErrReportAccessDenied
	}

	now := time.Now()
	sheetStart := sheetStartDate(target.JoiningDate, now)

	presenceDates, err := s.DailyReportRepository.PresenceDates(ctx, target.ID, sheetStart, now)
	if err != nil {
		return attendance.EmployeeReport{}, fmt.Errorf("failed to list presence dates: %w", err)
	}

	sheet := buildSheet(sheetStart, now, presenceDates)
	months := summarizeMonths(sheet)

	recentDaily, err := s.DailyReportRepository.ListRecentByUser(ctx, target.ID, recentReportLimit)
	if err != nil {
		return attendance.EmployeeReport{}, fmt.Errorf("failed to list recent daily reports: %w", err)
	}
	recentHourly, err := s.HourlyReportRepository.ListRecentByUser(ctx, target.ID, recentReportLimit)
	if err != nil {
		return attendance.EmployeeReport{}, fmt.Errorf("failed to list recent hourly reports: %w", err)
	}

	dailyItems := make([]report.ActivityItem, 0, len(recentDaily))
	for _, d := range recentDaily {
		dailyItems = append(dailyItems, report.NewDailyActivity(d))
	}
	hourlyItems := make([]report.ActivityItem, 0, len(recentHourly))
	for _, h := range recentHourly {
		hourlyItems = append(hourlyItems, report.NewHourlyActivity(h))
	}

	return attendance.EmployeeReport{
		UserID:       target.ID,
		Username:     target.Username,
		EmployeeID:   target.EmployeeID,
		Sheet:        sheet,
		Months:       months,
		RecentDaily:  dailyItems,
		RecentHourly: hourlyItems,
	}, nil
}

// Absentees implements attendance.Service.
func (s *AttendanceServiceImpl) Absentees(ctx context.Context, date string) (attendance.AbsenteeReport, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return attendance.AbsenteeReport{}, attendance.ErrInvalidDate
	}

	users, err := s.UserRepository.ListAll(ctx)
	if err != nil {
		return attendance.AbsenteeReport{}, fmt.Errorf("failed to list users: %w", err)
	}

	reportedIDs, err := s.DailyReportRepository.UserIDsReportedOn(ctx, day)
	if err != nil {
		return attendance.AbsenteeReport{}, fmt.Errorf("failed to list reported users: %w", err)
	}

	reported := make(map[string]bool, len(reportedIDs))
	for _, id := range reportedIDs {
		reported[id] = true
	}

	result := attendance.AbsenteeReport{
		Date:        date,
		Reported:    []attendance.AbsenteeRow{},
		NotReported: []attendance.AbsenteeRow{},
	}
	for _, u := range users {
		row := attendance.AbsenteeRow{
			UserID:     u.ID,
			Username:   u.Username,
			EmployeeID: u.EmployeeID,
		}
		if reported[u.ID] {
			result.Reported = append(result.Reported, row)
		} else {
			result.NotReported = append(result.NotReported, row)
		}
	}

	return result, nil
}

// sheetStartDate picks where the attendance sheet begins: the joining
// date, capped at maxSheetDays back. A zero or future joining date falls
// back to one month ago.
func sheetStartDate(joining, now time.Time) time.Time {
	if joining.IsZero() || joining.After(now) {
		return now.AddDate(0, -1, 0)
	}
	earliest := now.AddDate(0, 0, -maxSheetDays)
	if joining.Before(earliest) {
		return earliest
	}
	return joining
}

func buildSheet(from, to time.Time, presenceDates []time.Time) []attendance.SheetDay {
	present := make(map[string]bool, len(presenceDates))
	for _, d := range presenceDates {
		present[d.Format("2006-01-02")] = true
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	var sheet []attendance.SheetDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		sheet = append(sheet, attendance.SheetDay{
			Date:    key,
			Present: present[key],
		})
	}
	return sheet
}

func summarizeMonths(sheet []attendance.SheetDay) []attendance.MonthSummary {
	byMonth := make(map[string]*attendance.MonthSummary)
	for _, day := range sheet {
		month := day.Date[:7]
		summary, ok := byMonth[month]
		if !ok {
			summary = &attendance.MonthSummary{Month: month}
			byMonth[month] = summary
		}
		if day.Present {
			summary.Present++
		} else {
			summary.Absent++
		}
	}

	months := make([]attendance.MonthSummary, 0, len(byMonth))
	for _, summary := range byMonth {
		months = append(months, *summary)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}
