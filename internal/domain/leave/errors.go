package leave

import "errors"

var (
	ErrBalanceNotFound     = errors.New("leave balance not found")
	ErrInvalidLeaveType    = errors.New("leave type must be casual, sick, or paid")
	ErrInvalidDateRange    = errors.New("start date must not be after end date")
	ErrInsufficientBalance = errors.New("requested days exceed the remaining leave balance")
	ErrApplicationNotFound = errors.New("no pending leave application with that id")
	ErrInvalidDecision     = errors.New("decision must be approved or rejected")
	ErrApprovalForbidden   = errors.New("only managers and team leaders can act on leave applications")
)
