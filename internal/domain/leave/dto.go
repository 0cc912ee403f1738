package leave

import (
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be casual, sick, or paid",
		})
	}

	var start, end time.Time
	var startOK, endOK bool

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if end, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	Status string `json:"status"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BalanceResponse struct {
	Year   int       `json:"year"`
	Casual QuotaView `json:"casual"`
	Sick   QuotaView `json:"sick"`
	Paid   QuotaView `json:"paid"`
}

type QuotaView struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

func NewBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		Year: b.Year,
		Casual: QuotaView{
			Total:     b.CasualTotal,
			Used:      b.UsedCasual,
			Remaining: b.CasualTotal - b.UsedCasual,
		},
		Sick: QuotaView{
			Total:     b.SickTotal,
			Used:      b.UsedSick,
			Remaining: b.SickTotal - b.UsedSick,
		},
		Paid: QuotaView{
			Total:     b.PaidTotal,
			Used:      b.UsedPaid,
			Remaining: b.PaidTotal - b.UsedPaid,
		},
	}
}

type ApplicationView struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Username   string     `json:"username,omitempty"`
	EmployeeID string     `json:"employee_id,omitempty"`
	LeaveType  LeaveType  `json:"leave_type"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Days       int        `json:"days"`
	Reason     string     `json:"reason"`
	Status     Status     `json:"status"`
	ApprovedBy *string    `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewApplicationView(a Application) ApplicationView {
	return ApplicationView{
		ID:         a.ID,
		UserID:     a.UserID,
		Username:   a.Username,
		EmployeeID: a.EmployeeID,
		LeaveType:  a.LeaveType,
		StartDate:  a.StartDate.Format("2006-01-02"),
		EndDate:    a.EndDate.Format("2006-01-02"),
		Days:       a.Days(),
		Reason:     a.Reason,
		Status:     a.Status,
		ApprovedBy: a.ApprovedBy,
		ApprovedAt: a.ApprovedAt,
		CreatedAt:  a.CreatedAt,
	}
}

func NewApplicationViews(apps []Application) []ApplicationView {
	views := make([]ApplicationView, 0, len(apps))
	for _, a := range apps {
		views = append(views, NewApplicationView(a))
	}
	return views
}
