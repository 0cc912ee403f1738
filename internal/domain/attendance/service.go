package attendance

import (
	"context"

	"github.com/fieldteam/attendance-backend-go/internal/domain/auth"
)

type Service interface {
	// Overview aggregates presence for every employee in the month given
	// as YYYY-MM.
	Overview(ctx context.Context, month string) (Overview, error)
	// EmployeeReport builds the day-by-day sheet for the employee with
	// the given employee code. Allowed for the employee themselves and
	// for manager-ish callers.
	EmployeeReport(ctx context.Context, ident auth.Identity, employeeID string) (EmployeeReport, error)
	// Absentees splits employees by daily-report presence on the date
	// given as YYYY-MM-DD.
	Absentees(ctx context.Context, date string) (AbsenteeReport, error)
}
