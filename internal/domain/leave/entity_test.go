package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveDays(t *testing.T) {
	// Single day counts as one.
	assert.Equal(t, 1, LeaveDays(date(2024, 1, 1), date(2024, 1, 1)))
	// Span is inclusive on both ends.
	assert.Equal(t, 3, LeaveDays(date(2024, 1, 1), date(2024, 1, 3)))
	assert.Equal(t, 7, LeaveDays(date(2024, 3, 25), date(2024, 3, 31)))
	// Across a month boundary.
	assert.Equal(t, 2, LeaveDays(date(2024, 1, 31), date(2024, 2, 1)))
}

func TestApplicationDays(t *testing.T) {
	app := Application{
		StartDate: date(2024, 5, 6),
		EndDate:   date(2024, 5, 10),
	}
	assert.Equal(t, 5, app.Days())
}

func TestLeaveTypeValid(t *testing.T) {
	for _, lt := range []LeaveType{LeaveCasual, LeaveSick, LeavePaid} {
		assert.True(t, lt.Valid(), "type %q", lt)
	}
	assert.False(t, LeaveType("annual").Valid())
	assert.False(t, LeaveType("").Valid())
}

func TestBalanceRemaining(t *testing.T) {
	b := Balance{
		CasualTotal: 12,
		SickTotal:   12,
		PaidTotal:   5,
		UsedCasual:  4,
		UsedSick:    12,
		UsedPaid:    1,
	}
	assert.Equal(t, 8, b.Remaining(LeaveCasual))
	assert.Equal(t, 0, b.Remaining(LeaveSick))
	assert.Equal(t, 4, b.Remaining(LeavePaid))
	assert.Equal(t, 0, b.Remaining(LeaveType("annual")))
}
