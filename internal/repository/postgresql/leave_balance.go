package postgresql

import (
	"context"
	"fmt"

	"github.com/fieldteam/attendance-backend-go/internal/domain/leave"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/database"
)

const balanceColumns = `id, user_id, year, casual_total, sick_total, paid_total,
	   used_casual, used_sick, used_paid, created_at, updated_at`

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

// GetByUserYear implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) GetByUserYear(ctx context.Context, userID string, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + balanceColumns + ` FROM leave_balances WHERE user_id = $1 AND year = $2`

	var b leave.Balance
	err := q.QueryRow(ctx, query, userID, year).Scan(
		&b.ID,
		&b.UserID,
		&b.Year,
		&b.CasualTotal,
		&b.SickTotal,
		&b.PaidTotal,
		&b.UsedCasual,
		&b.UsedSick,
		&b.UsedPaid,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return leave.Balance{}, err
	}

	return b, nil
}

// CreateDefault implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) CreateDefault(ctx context.Context, userID string, year int) error {
	q := GetQuerier(ctx, r.db)

	// paid_total keeps its schema default
	query := `
		INSERT INTO leave_balances (user_id, year, casual_total, sick_total)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, year) DO NOTHING`

	_, err := q.Exec(ctx, query, userID, year, leave.DefaultCasualQuota, leave.DefaultSickQuota)
	return err
}

// IncrementUsed implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) IncrementUsed(ctx context.Context, userID string, year int, leaveType leave.LeaveType, days int) error {
	q := GetQuerier(ctx, r.db)

	var column string
	switch leaveType {
	case leave.LeaveCasual:
		column = "used_casual"
	case leave.LeaveSick:
		column = "used_sick"
	case leave.LeavePaid:
		column = "used_paid"
	default:
		return leave.ErrInvalidLeaveType
	}

	query := fmt.Sprintf(`
		UPDATE leave_balances
		SET %s = %s + $1, updated_at = NOW()
		WHERE user_id = $2 AND year = $3`, column, column)

	tag, err := q.Exec(ctx, query, days, userID, year)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}
