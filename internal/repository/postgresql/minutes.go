package postgresql

import (
	"context"

	"github.com/fieldteam/attendance-backend-go/internal/domain/report"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const minutesColumns = `m.id, m.user_id, u.username, m.meeting_date, m.project_name,
	   m.attendees, m.points_discussed, m.location, m.latitude, m.longitude, m.created_at`

const minutesFrom = ` FROM meeting_minutes m JOIN users u ON u.id = m.user_id`

type minutesRepositoryImpl struct {
	db *database.DB
}

func NewMinutesRepository(db *database.DB) report.MinutesRepository {
	return &minutesRepositoryImpl{db: db}
}

func scanMinutes(row pgx.Row) (report.MeetingMinutes, error) {
	var m report.MeetingMinutes
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Username,
		&m.MeetingDate,
		&m.ProjectName,
		&m.Attendees,
		&m.PointsDiscussed,
		&m.Location,
		&m.Latitude,
		&m.Longitude,
		&m.CreatedAt,
	)
	if err != nil {
		return report.MeetingMinutes{}, err
	}
	return m, nil
}

// Create implements report.MinutesRepository.
func (r *minutesRepositoryImpl) Create(ctx context.Context, m report.MeetingMinutes) (report.MeetingMinutes, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meeting_minutes (user_id, meeting_date, project_name, attendees, points_discussed, location, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, meeting_date, created_at`

	created := m
	err := q.QueryRow(ctx, query,
		m.UserID,
		m.MeetingDate,
		m.ProjectName,
		m.Attendees,
		m.PointsDiscussed,
		m.Location,
		m.Latitude,
		m.Longitude,
	).Scan(&created.ID, &created.MeetingDate, &created.CreatedAt)
	if err != nil {
		return report.MeetingMinutes{}, err
	}

	return created, nil
}

// ListAll implements report.MinutesRepository.
func (r *minutesRepositoryImpl) ListAll(ctx context.Context) ([]report.MeetingMinutes, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+minutesColumns+minutesFrom+` ORDER BY m.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanMinutesList(rows)
}

// ListByUser implements report.MinutesRepository.
func (r *minutesRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]report.MeetingMinutes, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + minutesColumns + minutesFrom + `
		WHERE m.user_id = $1
		ORDER BY m.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanMinutesList(rows)
}

func scanMinutesList(rows pgx.Rows) ([]report.MeetingMinutes, error) {
	defer rows.Close()

	var minutes []report.MeetingMinutes
	for rows.Next() {
		m, err := scanMinutes(rows)
		if err != nil {
			return nil, err
		}
		minutes = append(minutes, m)
	}
	return minutes, rows.Err()
}
