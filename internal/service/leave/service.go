package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/domain/leave"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/database"
	"github.com/fieldteam/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.BalanceRepository
	leave.ApplicationRepository

	runInTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewLeaveService(
	db *database.DB,
	balanceRepository leave.BalanceRepository,
	applicationRepository leave.ApplicationRepository,
) leave.Service {
	s := &LeaveServiceImpl{
		db:                    db,
		BalanceRepository:     balanceRepository,
		ApplicationRepository: applicationRepository,
	}
	s.runInTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

// Balance implements leave.Service.
func (s *LeaveServiceImpl) Balance(ctx context.Context, userID string) (leave.BalanceResponse, error) {
	balance, err := s.currentYearBalance(ctx, userID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	return leave.NewBalanceResponse(balance), nil
}

// Apply implements leave.Service.
func (s *LeaveServiceImpl) Apply(ctx context.Context, userID string, req leave.ApplyRequest) (leave.ApplicationView, error) {
	leaveType := leave.LeaveType(req.LeaveType)
	if !leaveType.Valid() {
		return leave.ApplicationView{}, leave.ErrInvalidLeaveType
	}

	// Validate() already guarantees both dates parse.
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if start.After(end) {
		return leave.ApplicationView{}, leave.ErrInvalidDateRange
	}

	balance, err := s.currentYearBalance(ctx, userID)
	if err != nil {
		return leave.ApplicationView{}, err
	}

	days := leave.LeaveDays(start, end)
	if days > balance.Remaining(leaveType) {
		return leave.ApplicationView{}, leave.ErrInsufficientBalance
	}

	created, err := s.ApplicationRepository.Create(ctx, leave.Application{
		UserID:    userID,
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.ApplicationView{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return leave.NewApplicationView(created), nil
}

// History implements leave.Service.
func (s *LeaveServiceImpl) History(ctx context.Context, userID string) ([]leave.ApplicationView, error) {
	apps, err := s.ApplicationRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	return leave.NewApplicationViews(apps), nil
}

// ApprovalsQueue implements leave.Service.
func (s *LeaveServiceImpl) ApprovalsQueue(ctx context.Context) ([]leave.ApplicationView, error) {
	apps, err := s.ApplicationRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending applications: %w", err)
	}
	return leave.NewApplicationViews(apps), nil
}

// Decide implements leave.Service. The status transition and the balance
// increment commit together; a concurrent decision on the same
// application loses with ErrApplicationNotFound.
func (s *LeaveServiceImpl) Decide(ctx context.Context, applicationID, approverID, decision string) (leave.ApplicationView, error) {
	status := leave.Status(strings.ToLower(strings.TrimSpace(decision)))
	if status != leave.StatusApproved && status != leave.StatusRejected {
		return leave.ApplicationView{}, leave.ErrInvalidDecision
	}

	// A malformed id cannot match any row; reject it before it reaches
	// the uuid column and turns into a driver error.
	if _, err := uuid.Parse(applicationID); err != nil {
		return leave.ApplicationView{}, leave.ErrApplicationNotFound
	}

	var decided leave.Application
	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		app, err := s.ApplicationRepository.SetDecision(txCtx, applicationID, status, approverID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return leave.ErrApplicationNotFound
			}
			return fmt.Errorf("failed to set decision: %w", err)
		}

		if status == leave.StatusApproved {
			year := time.Now().Year()
			if err := s.ensureBalance(txCtx, app.UserID, year); err != nil {
				return err
			}
			if err := s.BalanceRepository.IncrementUsed(txCtx, app.UserID, year, app.LeaveType, app.Days()); err != nil {
				return fmt.Errorf("failed to increment used leave: %w", err)
			}
		}

		decided = app
		return nil
	})
	if err != nil {
		return leave.ApplicationView{}, err
	}

	return leave.NewApplicationView(decided), nil
}

// currentYearBalance reads the caller's balance for the current calendar
// year, creating the default row on first access.
func (s *LeaveServiceImpl) currentYearBalance(ctx context.Context, userID string) (leave.Balance, error) {
	year := time.Now().Year()

	balance, err := s.BalanceRepository.GetByUserYear(ctx, userID, year)
	if err == nil {
		return balance, nil
	}
	if err != pgx.ErrNoRows {
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	if err := s.BalanceRepository.CreateDefault(ctx, userID, year); err != nil {
		return leave.Balance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	balance, err = s.BalanceRepository.GetByUserYear(ctx, userID, year)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	return balance, nil
}

func (s *LeaveServiceImpl) ensureBalance(ctx context.Context, userID string, year int) error {
	_, err := s.BalanceRepository.GetByUserYear(ctx, userID, year)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		return fmt.Errorf("failed to get leave balance: %w", err)
	}
	if err := s.BalanceRepository.CreateDefault(ctx, userID, year); err != nil {
		return fmt.Errorf("failed to create leave balance: %w", err)
	}
	return nil
}
