package postgresql

import (
	"context"

	"github.com/fieldteam/attendance-backend-go/internal/domain/leave"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `a.id, a.user_id, u.username, u.employee_id, a.leave_type,
	   a.start_date, a.end_date, a.reason, a.status, a.approved_by, a.approved_at, a.created_at`

const applicationFrom = ` FROM leave_applications a JOIN users u ON u.id = a.user_id`

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) leave.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

func scanApplication(row pgx.Row) (leave.Application, error) {
	var a leave.Application
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Username,
		&a.EmployeeID,
		&a.LeaveType,
		&a.StartDate,
		&a.EndDate,
		&a.Reason,
		&a.Status,
		&a.ApprovedBy,
		&a.ApprovedAt,
		&a.CreatedAt,
	)
	if err != nil {
		return leave.Application{}, err
	}
	return a, nil
}

func scanApplications(rows pgx.Rows) ([]leave.Application, error) {
	defer rows.Close()

	var apps []leave.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// Create implements leave.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, app leave.Application) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (user_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at`

	created := app
	err := q.QueryRow(ctx, query,
		app.UserID,
		app.LeaveType,
		app.StartDate,
		app.EndDate,
		app.Reason,
		leave.StatusPending,
	).Scan(&created.ID, &created.Status, &created.CreatedAt)
	if err != nil {
		return leave.Application{}, err
	}

	return created, nil
}

// ListByUser implements leave.ApplicationRepository.
func (r *applicationRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + applicationFrom + `
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanApplications(rows)
}

// ListPending implements leave.ApplicationRepository.
func (r *applicationRepositoryImpl) ListPending(ctx context.Context) ([]leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + applicationFrom + `
		WHERE a.status = $1
		ORDER BY a.created_at ASC`

	rows, err := q.Query(ctx, query, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	return scanApplications(rows)
}

// SetDecision implements leave.ApplicationRepository.
func (r *applicationRepositoryImpl) SetDecision(ctx context.Context, id string, status leave.Status, approverID string) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the pending -> terminal transition
	// single-shot even when two deciders race.
	query := `
		UPDATE leave_applications a
		SET status = $1, approved_by = $2, approved_at = NOW()
		FROM users u
		WHERE a.id = $3 AND a.status = $4 AND u.id = a.user_id
		RETURNING ` + applicationColumns

	return scanApplication(q.QueryRow(ctx, query, status, approverID, id, leave.StatusPending))
}
