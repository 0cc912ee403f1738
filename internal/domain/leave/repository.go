package leave

import "context"

type BalanceRepository interface {
	GetByUserYear(ctx context.Context, userID string, year int) (Balance, error)
	// CreateDefault inserts the default entitlement row for (user, year).
	CreateDefault(ctx context.Context, userID string, year int) error
	// IncrementUsed adds days to the used counter of one leave type.
	IncrementUsed(ctx context.Context, userID string, year int, leaveType LeaveType, days int) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (Application, error)
	ListByUser(ctx context.Context, userID string) ([]Application, error)
	// ListPending returns pending applications joined with requester
	// identity, oldest first.
	ListPending(ctx context.Context) ([]Application, error)
	// SetDecision stamps the terminal status, approver and decision time.
	SetDecision(ctx context.Context, id string, status Status, approverID string) (Application, error)
}
