package attendance

import "github.com/fieldteam/attendance-backend-go/internal/domain/report"

// OverviewRow is one employee's attendance stats for the requested
// month.
type OverviewRow struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	EmployeeID       string `json:"employee_id"`
	PresentDays      int    `json:"present_days"`
	DaysSinceJoining int    `json:"days_since_joining"`
}

type Overview struct {
	Month     string        `json:"month"`
	Employees []OverviewRow `json:"employees"`
}

// SheetDay is one calendar day on an employee's attendance sheet.
type SheetDay struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
}

// MonthSummary aggregates a sheet into per-month counts.
type MonthSummary struct {
	Month   string `json:"month"` // YYYY-MM
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// EmployeeReport is the per-employee attendance sheet plus the most
// recent reports.
type EmployeeReport struct {
	UserID       string                `json:"user_id"`
	Username     string                `json:"username"`
	EmployeeID   string                `json:"employee_id"`
	Sheet        []SheetDay            `json:"sheet"`
	Months       []MonthSummary        `json:"months"`
	RecentDaily  []report.ActivityItem `json:"recent_daily"`
	RecentHourly []report.ActivityItem `json:"recent_hourly"`
}

// AbsenteeReport splits all employees by daily-report presence on one
// date.
type AbsenteeReport struct {
	Date        string        `json:"date"`
	Reported    []AbsenteeRow `json:"reported"`
	NotReported []AbsenteeRow `json:"not_reported"`
}

type AbsenteeRow struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	EmployeeID string `json:"employee_id"`
}
