package report

import (
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/pkg/validator"
)

// ActivityItem is the normalized feed row. Daily and hourly reports
// share the common fields; fields belonging to the other kind stay nil.
type ActivityItem struct {
	ID           string    `json:"id"`
	ReportType   string    `json:"report_type"` // "daily" or "hourly"
	UserID       *string   `json:"user_id"`
	Username     string    `json:"username"`
	ReportDate   string    `json:"report_date"`
	ProblemFaced *string   `json:"problem_faced"`
	CreatedAt    time.Time `json:"created_at"`

	// Daily-only
	InTime         *string `json:"in_time"`
	OutTime        *string `json:"out_time"`
	ProjectNumber  *string `json:"project_number"`
	LocationType   *string `json:"location_type"`
	TargetAchieved *string `json:"target_achieved"`
	Customer       *string `json:"customer"`
	EndCustomer    *string `json:"end_customer"`
	SiteLocation   *string `json:"site_location"`

	// Hourly-only
	ProjectName *string `json:"project_name"`
	Activity    *string `json:"activity"`
}

func NewDailyActivity(d DailyReport) ActivityItem {
	username := d.Username
	if username == "" && d.Incharge != nil {
		username = *d.Incharge
	}
	locationType := string(d.LocationType)
	return ActivityItem{
		ID:             d.ID,
		ReportType:     "daily",
		UserID:         d.UserID,
		Username:       username,
		ReportDate:     d.ReportDate.Format("2006-01-02"),
		ProblemFaced:   d.ProblemFaced,
		CreatedAt:      d.CreatedAt,
		InTime:         d.InTime,
		OutTime:        d.OutTime,
		ProjectNumber:  d.ProjectNumber,
		LocationType:   &locationType,
		TargetAchieved: d.TargetAchieved,
		Customer:       d.Customer,
		EndCustomer:    d.EndCustomer,
		SiteLocation:   d.SiteLocation,
	}
}

func NewHourlyActivity(h HourlyReport) ActivityItem {
	return ActivityItem{
		ID:           h.ID,
		ReportType:   "hourly",
		UserID:       &h.UserID,
		Username:     h.Username,
		ReportDate:   h.ReportDate.Format("2006-01-02"),
		ProblemFaced: h.ProblemFaced,
		CreatedAt:    h.CreatedAt,
		ProjectName:  &h.ProjectName,
		Activity:     &h.Activity,
	}
}

// ActivityPage is one page of the merged feed.
type ActivityPage struct {
	Items      []ActivityItem `json:"items"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalItems int            `json:"total_items"`
}

// Summary carries the report counts visible to the caller.
type Summary struct {
	DailyReports  int `json:"daily_reports"`
	HourlyReports int `json:"hourly_reports"`
	TotalReports  int `json:"total_reports"`
}

// MinutesView is the API shape of a meeting-minutes record.
type MinutesView struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Username        string    `json:"username"`
	MeetingDate     string    `json:"meeting_date"`
	ProjectName     string    `json:"project_name"`
	Attendees       string    `json:"attendees"`
	PointsDiscussed string    `json:"points_discussed"`
	Location        *string   `json:"location,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewMinutesView(m MeetingMinutes) MinutesView {
	return MinutesView{
		ID:              m.ID,
		UserID:          m.UserID,
		Username:        m.Username,
		MeetingDate:     m.MeetingDate.Format("2006-01-02"),
		ProjectName:     m.ProjectName,
		Attendees:       m.Attendees,
		PointsDiscussed: m.PointsDiscussed,
		Location:        m.Location,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		CreatedAt:       m.CreatedAt,
	}
}

func NewMinutesViews(minutes []MeetingMinutes) []MinutesView {
	views := make([]MinutesView, 0, len(minutes))
	for _, m := range minutes {
		views = append(views, NewMinutesView(m))
	}
	return views
}

type CreateMinutesRequest struct {
	MeetingDate     string   `json:"meeting_date"`
	ProjectName     string   `json:"project_name"`
	Attendees       string   `json:"attendees"`
	PointsDiscussed string   `json:"points_discussed"`
	Location        *string  `json:"location,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

func (r *CreateMinutesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MeetingDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_date",
			Message: "meeting_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.MeetingDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_date",
			Message: "meeting_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ProjectName) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name is required",
		})
	}

	if validator.IsEmpty(r.PointsDiscussed) {
		errs = append(errs, validator.ValidationError{
			Field:   "points_discussed",
			Message: "points_discussed is required",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
