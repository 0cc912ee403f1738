package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/domain/leave"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type balanceKey struct {
	userID string
	year   int
}

type fakeBalanceRepo struct {
	balances map[balanceKey]leave.Balance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[balanceKey]leave.Balance)}
}

func (f *fakeBalanceRepo) GetByUserYear(ctx context.Context, userID string, year int) (leave.Balance, error) {
	b, ok := f.balances[balanceKey{userID, year}]
	if !ok {
		return leave.Balance{}, pgx.ErrNoRows
	}
	return b, nil
}

func (f *fakeBalanceRepo) CreateDefault(ctx context.Context, userID string, year int) error {
	key := balanceKey{userID, year}
	if _, ok := f.balances[key]; ok {
		return nil
	}
	f.balances[key] = leave.Balance{
		ID:          fmt.Sprintf("bal-%s-%d", userID, year),
		UserID:      userID,
		Year:        year,
		CasualTotal: leave.DefaultCasualQuota,
		SickTotal:   leave.DefaultSickQuota,
	}
	return nil
}

func (f *fakeBalanceRepo) IncrementUsed(ctx context.Context, userID string, year int, leaveType leave.LeaveType, days int) error {
	key := balanceKey{userID, year}
	b, ok := f.balances[key]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	switch leaveType {
	case leave.LeaveCasual:
		b.UsedCasual += days
	case leave.LeaveSick:
		b.UsedSick += days
	case leave.LeavePaid:
		b.UsedPaid += days
	}
	f.balances[key] = b
	return nil
}

type fakeApplicationRepo struct {
	apps []leave.Application
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app leave.Application) (leave.Application, error) {
	app.ID = fmt.Sprintf("app-%d", len(f.apps)+1)
	app.Status = leave.StatusPending
	app.CreatedAt = time.Now()
	f.apps = append(f.apps, app)
	return app, nil
}

func (f *fakeApplicationRepo) ListByUser(ctx context.Context, userID string) ([]leave.Application, error) {
	var out []leave.Application
	for _, a := range f.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListPending(ctx context.Context) ([]leave.Application, error) {
	var out []leave.Application
	for _, a := range f.apps {
		if a.Status == leave.StatusPending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) SetDecision(ctx context.Context, id string, status leave.Status, approverID string) (leave.Application, error) {
	for i, a := range f.apps {
		if a.ID == id && a.Status == leave.StatusPending {
			now := time.Now()
			a.Status = status
			a.ApprovedBy = &approverID
			a.ApprovedAt = &now
			f.apps[i] = a
			return a, nil
		}
	}
	return leave.Application{}, pgx.ErrNoRows
}

func applyRequest(days int) leave.ApplyRequest {
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, days-1)
	return leave.ApplyRequest{
		LeaveType: "casual",
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Reason:    "family event",
	}
}

func TestBalanceCreatesDefaultOnFirstAccess(t *testing.T) {
	balances := newFakeBalanceRepo()
	svc := NewLeaveService(nil, balances, &fakeApplicationRepo{})

	resp, err := svc.Balance(context.Background(), "alice-id")
	require.NoError(t, err)

	assert.Equal(t, time.Now().Year(), resp.Year)
	assert.Equal(t, leave.QuotaView{Total: 12, Used: 0, Remaining: 12}, resp.Casual)
	assert.Equal(t, leave.QuotaView{Total: 12, Used: 0, Remaining: 12}, resp.Sick)
	assert.Equal(t, leave.QuotaView{Total: 0, Used: 0, Remaining: 0}, resp.Paid)

	// The default row is persisted, not recomputed per call.
	_, err = balances.GetByUserYear(context.Background(), "alice-id", time.Now().Year())
	assert.NoError(t, err)
}

func TestBalanceReturnsExisting(t *testing.T) {
	balances := newFakeBalanceRepo()
	year := time.Now().Year()
	balances.balances[balanceKey{"alice-id", year}] = leave.Balance{
		UserID: "alice-id", Year: year,
		CasualTotal: 12, SickTotal: 12, UsedCasual: 5,
	}
	svc := NewLeaveService(nil, balances, &fakeApplicationRepo{})

	resp, err := svc.Balance(context.Background(), "alice-id")
	require.NoError(t, err)
	assert.Equal(t, leave.QuotaView{Total: 12, Used: 5, Remaining: 7}, resp.Casual)
}

func TestApply(t *testing.T) {
	balances := newFakeBalanceRepo()
	apps := &fakeApplicationRepo{}
	svc := NewLeaveService(nil, balances, apps)

	view, err := svc.Apply(context.Background(), "alice-id", applyRequest(3))
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, view.Status)
	assert.Equal(t, 3, view.Days)
	assert.Equal(t, leave.LeaveCasual, view.LeaveType)
	require.Len(t, apps.apps, 1)
}

func TestApplyInsufficientBalance(t *testing.T) {
	balances := newFakeBalanceRepo()
	svc := NewLeaveService(nil, balances, &fakeApplicationRepo{})

	// Default casual quota is 12 days.
	_, err := svc.Apply(context.Background(), "alice-id", applyRequest(13))
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestApplyExactRemainingAllowed(t *testing.T) {
	balances := newFakeBalanceRepo()
	svc := NewLeaveService(nil, balances, &fakeApplicationRepo{})

	view, err := svc.Apply(context.Background(), "alice-id", applyRequest(12))
	require.NoError(t, err)
	assert.Equal(t, 12, view.Days)
}

func TestApplyDoesNotConsumeBalance(t *testing.T) {
	balances := newFakeBalanceRepo()
	svc := NewLeaveService(nil, balances, &fakeApplicationRepo{})

	_, err := svc.Apply(context.Background(), "alice-id", applyRequest(3))
	require.NoError(t, err)

	// Consumption happens at approval time, not at submission.
	resp, err := svc.Balance(context.Background(), "alice-id")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Casual.Used)
}

func TestApplyInvalidType(t *testing.T) {
	svc := NewLeaveService(nil, newFakeBalanceRepo(), &fakeApplicationRepo{})

	req := applyRequest(2)
	req.LeaveType = "annual"
	_, err := svc.Apply(context.Background(), "alice-id", req)
	assert.ErrorIs(t, err, leave.ErrInvalidLeaveType)
}

func TestHistory(t *testing.T) {
	apps := &fakeApplicationRepo{}
	svc := NewLeaveService(nil, newFakeBalanceRepo(), apps)

	_, err := svc.Apply(context.Background(), "alice-id", applyRequest(2))
	require.NoError(t, err)

	history, err := svc.History(context.Background(), "alice-id")
	require.NoError(t, err)
	assert.Len(t, history, 1)

	other, err := svc.History(context.Background(), "bob-id")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestApprovalsQueueOnlyPending(t *testing.T) {
	apps := &fakeApplicationRepo{apps: []leave.Application{
		{ID: "app-1", UserID: "alice-id", LeaveType: leave.LeaveCasual, Status: leave.StatusPending},
		{ID: "app-2", UserID: "bob-id", LeaveType: leave.LeaveSick, Status: leave.StatusApproved},
	}}
	svc := NewLeaveService(nil, newFakeBalanceRepo(), apps)

	queue, err := svc.ApprovalsQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "app-1", queue[0].ID)
}

func TestDecideInvalidDecision(t *testing.T) {
	svc := NewLeaveService(nil, newFakeBalanceRepo(), &fakeApplicationRepo{})

	_, err := svc.Decide(context.Background(), "app-1", "mgr-id", "maybe")
	assert.ErrorIs(t, err, leave.ErrInvalidDecision)

	_, err = svc.Decide(context.Background(), "app-1", "mgr-id", "")
	assert.ErrorIs(t, err, leave.ErrInvalidDecision)
}

func TestDecideMalformedID(t *testing.T) {
	svc := NewLeaveService(nil, newFakeBalanceRepo(), &fakeApplicationRepo{})

	_, err := svc.Decide(context.Background(), "not-a-uuid", "mgr-id", "approved")
	assert.ErrorIs(t, err, leave.ErrApplicationNotFound)
}

// newDecidableService bypasses the pool-backed transaction so the decide
// path runs against the fakes.
func newDecidableService(balances *fakeBalanceRepo, apps *fakeApplicationRepo) *LeaveServiceImpl {
	svc := NewLeaveService(nil, balances, apps).(*LeaveServiceImpl)
	svc.runInTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}
	return svc
}

func pendingApplication(id string, days int) leave.Application {
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	return leave.Application{
		ID:        id,
		UserID:    "alice-id",
		LeaveType: leave.LeaveCasual,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days-1),
		Status:    leave.StatusPending,
	}
}

func TestDecideApproveIncrementsUsed(t *testing.T) {
	appID := "7d9f2f60-52d4-4c5e-9a31-7a54a1c2b0aa"
	balances := newFakeBalanceRepo()
	apps := &fakeApplicationRepo{apps: []leave.Application{pendingApplication(appID, 3)}}
	svc := newDecidableService(balances, apps)

	view, err := svc.Decide(context.Background(), appID, "mgr-id", "approved")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, view.Status)

	b, err := balances.GetByUserYear(context.Background(), "alice-id", time.Now().Year())
	require.NoError(t, err)
	assert.Equal(t, 3, b.UsedCasual)
	assert.Equal(t, 0, b.UsedSick)
}

func TestDecideRejectLeavesBalanceUntouched(t *testing.T) {
	appID := "7d9f2f60-52d4-4c5e-9a31-7a54a1c2b0ab"
	balances := newFakeBalanceRepo()
	apps := &fakeApplicationRepo{apps: []leave.Application{pendingApplication(appID, 3)}}
	svc := newDecidableService(balances, apps)

	view, err := svc.Decide(context.Background(), appID, "mgr-id", "rejected")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, view.Status)

	// Rejection never touches the balance, not even to create the row.
	_, err = balances.GetByUserYear(context.Background(), "alice-id", time.Now().Year())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestDecideAlreadyProcessed(t *testing.T) {
	appID := "7d9f2f60-52d4-4c5e-9a31-7a54a1c2b0ac"
	app := pendingApplication(appID, 2)
	app.Status = leave.StatusApproved
	svc := newDecidableService(newFakeBalanceRepo(), &fakeApplicationRepo{apps: []leave.Application{app}})

	_, err := svc.Decide(context.Background(), appID, "mgr-id", "rejected")
	assert.ErrorIs(t, err, leave.ErrApplicationNotFound)
}
