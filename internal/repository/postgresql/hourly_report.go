package postgresql

import (
	"context"

	"github.com/fieldteam/attendance-backend-go/internal/domain/report"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const hourlyColumns = `h.id, h.user_id, u.username, h.report_date, h.project_name,
	   h.activity, h.problem_faced, h.created_at`

const hourlyFrom = ` FROM hourly_reports h JOIN users u ON u.id = h.user_id`

type hourlyReportRepositoryImpl struct {
	db *database.DB
}

func NewHourlyReportRepository(db *database.DB) report.HourlyReportRepository {
	return &hourlyReportRepositoryImpl{db: db}
}

func scanHourlyReport(row pgx.Row) (report.HourlyReport, error) {
	var h report.HourlyReport
	err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.Username,
		&h.ReportDate,
		&h.ProjectName,
		&h.Activity,
		&h.ProblemFaced,
		&h.CreatedAt,
	)
	if err != nil {
		return report.HourlyReport{}, err
	}
	return h, nil
}

func scanHourlyReports(rows pgx.Rows) ([]report.HourlyReport, error) {
	defer rows.Close()

	var reports []report.HourlyReport
	for rows.Next() {
		h, err := scanHourlyReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, h)
	}
	return reports, rows.Err()
}

// ListAll implements report.HourlyReportRepository.
func (r *hourlyReportRepositoryImpl) ListAll(ctx context.Context) ([]report.HourlyReport, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+hourlyColumns+hourlyFrom+` ORDER BY h.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanHourlyReports(rows)
}

// ListByUser implements report.HourlyReportRepository.
func (r *hourlyReportRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]report.HourlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + hourlyColumns + hourlyFrom + `
		WHERE h.user_id = $1
		ORDER BY h.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanHourlyReports(rows)
}

// ListRecentByUser implements report.HourlyReportRepository.
func (r *hourlyReportRepositoryImpl) ListRecentByUser(ctx context.Context, userID string, limit int) ([]report.HourlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + hourlyColumns + hourlyFrom + `
		WHERE h.user_id = $1
		ORDER BY h.created_at DESC
		LIMIT $2`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return scanHourlyReports(rows)
}

// LatestByUser implements report.HourlyReportRepository.
func (r *hourlyReportRepositoryImpl) LatestByUser(ctx context.Context, userID string) (report.HourlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + hourlyColumns + hourlyFrom + `
		WHERE h.user_id = $1
		ORDER BY h.created_at DESC
		LIMIT 1`

	return scanHourlyReport(q.QueryRow(ctx, query, userID))
}

// CountAll implements report.HourlyReportRepository.
func (r *hourlyReportRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM hourly_reports`).Scan(&count)
	return count, err
}

// CountByUser implements report.HourlyReportRepository.
func (r *hourlyReportRepositoryImpl) CountByUser(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM hourly_reports WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
