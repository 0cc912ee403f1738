package postgresql

import (
	"context"
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/domain/report"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Daily rows join the owning user when user_id is set; legacy rows fall
// back to the incharge username.
const dailyColumns = `d.id, d.user_id, d.incharge, COALESCE(u.username, d.incharge, ''),
	   d.report_date, d.in_time, d.out_time, d.project_number, d.location_type,
	   d.target_achieved, d.problem_faced, d.customer, d.end_customer, d.site_location,
	   d.created_at`

const dailyFrom = ` FROM daily_reports d LEFT JOIN users u ON u.id = d.user_id`

type dailyReportRepositoryImpl struct {
	db *database.DB
}

func NewDailyReportRepository(db *database.DB) report.DailyReportRepository {
	return &dailyReportRepositoryImpl{db: db}
}

func scanDailyReport(row pgx.Row) (report.DailyReport, error) {
	var d report.DailyReport
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Incharge,
		&d.Username,
		&d.ReportDate,
		&d.InTime,
		&d.OutTime,
		&d.ProjectNumber,
		&d.LocationType,
		&d.TargetAchieved,
		&d.ProblemFaced,
		&d.Customer,
		&d.EndCustomer,
		&d.SiteLocation,
		&d.CreatedAt,
	)
	if err != nil {
		return report.DailyReport{}, err
	}
	return d, nil
}

func scanDailyReports(rows pgx.Rows) ([]report.DailyReport, error) {
	defer rows.Close()

	var reports []report.DailyReport
	for rows.Next() {
		d, err := scanDailyReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, d)
	}
	return reports, rows.Err()
}

// ListAll implements report.DailyReportRepository.
func (r *dailyReportRepositoryImpl) ListAll(ctx context.Context) ([]report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+dailyColumns+dailyFrom+` ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanDailyReports(rows)
}

// ListVisibleTo implements report.DailyReportRepository.
func (r *dailyReportRepositoryImpl) ListVisibleTo(ctx context.Context, userID, username string) ([]report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyColumns + dailyFrom + `
		WHERE d.user_id = $1 OR (d.user_id IS NULL AND d.incharge = $2)
		ORDER BY d.created_at DESC`

	rows, err := q.Query(ctx, query, userID, username)
	if err != nil {
		return nil, err
	}
	return scanDailyReports(rows)
}

// ListRecentByUser implements report.DailyReportRepository.
func (r *dailyReportRepositoryImpl) ListRecentByUser(ctx context.Context, userID string, limit int) ([]report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dailyColumns + dailyFrom + `
		WHERE d.user_id = $1
		ORDER BY d.created_at DESC
		LIMIT $2`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return scanDailyReports(rows)
}

// PresenceDaysInMonth implements report.DailyReportRepository.
func (r *dailyReportRepositoryImpl) PresenceDaysInMonth(ctx context.Context, monthStart time.Time) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, COUNT(DISTINCT report_date)
		FROM daily_reports
		WHERE user_id IS NOT NULL
		  AND location_type IN ('office', 'site')
		  AND report_date >= $1 AND report_date < $2
		GROUP BY user_id`

	monthEnd := monthStart.AddDate(0, 1, 0)
	rows, err := q.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[string]int)
	for rows.Next() {
		var userID string
		var count int
		if err := rows.Scan(&userID, &count); err != nil {
			return nil, err
		}
		days[userID] = count
	}
	return days, rows.Err()
}

// PresenceDates implements report.DailyReportRepository.
func (r *dailyReportRepositoryImpl) PresenceDates(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT report_date
		FROM daily_reports
		WHERE user_id = $1
		  AND location_type IN ('office', 'site')
		  AND report_date >= $2 AND report_date <= $3
		ORDER BY report_date`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

// UserIDsReportedOn implements report.DailyReportRepository.
func (r *dailyReportRepositoryImpl) UserIDsReportedOn(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT user_id
		FROM daily_reports
		WHERE user_id IS NOT NULL AND report_date = $1`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountAll implements report.DailyReportRepository.
func (r *dailyReportRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM daily_reports`).Scan(&count)
	return count, err
}

// CountVisibleTo implements report.DailyReportRepository.
func (r *dailyReportRepositoryImpl) CountVisibleTo(ctx context.Context, userID, username string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM daily_reports
		WHERE user_id = $1 OR (user_id IS NULL AND incharge = $2)`

	var count int
	err := q.QueryRow(ctx, query, userID, username).Scan(&count)
	return count, err
}
