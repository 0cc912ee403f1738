package leave

import (
	"math"
	"time"
)

type LeaveType string

const (
	LeaveCasual LeaveType = "casual"
	LeaveSick   LeaveType = "sick"
	LeavePaid   LeaveType = "paid"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveCasual, LeaveSick, LeavePaid:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Default entitlements granted when a yearly balance row is first
// created. Paid leave stays at the schema default.
const (
	DefaultCasualQuota = 12
	DefaultSickQuota   = 12
)

// Balance is the per-user, per-calendar-year leave account.
type Balance struct {
	ID          string
	UserID      string
	Year        int
	CasualTotal int
	SickTotal   int
	PaidTotal   int
	UsedCasual  int
	UsedSick    int
	UsedPaid    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Remaining returns entitlement minus consumption for one leave type.
func (b *Balance) Remaining(t LeaveType) int {
	switch t {
	case LeaveCasual:
		return b.CasualTotal - b.UsedCasual
	case LeaveSick:
		return b.SickTotal - b.UsedSick
	case LeavePaid:
		return b.PaidTotal - b.UsedPaid
	}
	return 0
}

type Application struct {
	ID         string
	UserID     string
	Username   string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
}

// Days returns the inclusive whole-day span of the application.
func (a *Application) Days() int {
	return LeaveDays(a.StartDate, a.EndDate)
}

// LeaveDays counts the inclusive day span between two dates:
// 2024-01-01..2024-01-03 is 3 days.
func LeaveDays(start, end time.Time) int {
	return int(math.Ceil(math.Abs(end.Sub(start).Hours())/24)) + 1
}
