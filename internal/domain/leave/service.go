package leave

import "context"

type Service interface {
	// Balance returns the caller's current-year balance, creating the
	// default row on first access.
	Balance(ctx context.Context, userID string) (BalanceResponse, error)
	Apply(ctx context.Context, userID string, req ApplyRequest) (ApplicationView, error)
	History(ctx context.Context, userID string) ([]ApplicationView, error)
	// ApprovalsQueue returns all pending applications, oldest first.
	// Callers must hold an approving role.
	ApprovalsQueue(ctx context.Context) ([]ApplicationView, error)
	// Decide resolves a pending application. The decision string is
	// normalized to lowercase and must be "approved" or "rejected".
	Decide(ctx context.Context, applicationID, approverID, decision string) (ApplicationView, error)
}
