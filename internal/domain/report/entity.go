package report

import "time"

type LocationType string

const (
	LocationOffice LocationType = "office"
	LocationSite   LocationType = "site"
	LocationOther  LocationType = "other"
)

// DailyReport is a day-level target report. Legacy rows predate the
// user_id column and are attributed through the free-text Incharge
// username instead.
type DailyReport struct {
	ID             string
	UserID         *string
	Incharge       *string
	Username       string
	ReportDate     time.Time
	InTime         *string
	OutTime        *string
	ProjectNumber  *string
	LocationType   LocationType
	TargetAchieved *string
	ProblemFaced   *string
	Customer       *string
	EndCustomer    *string
	SiteLocation   *string
	CreatedAt      time.Time
}

// CountsAsPresence reports whether the row marks the employee present
// for attendance purposes.
func (d *DailyReport) CountsAsPresence() bool {
	return d.LocationType == LocationOffice || d.LocationType == LocationSite
}

type HourlyReport struct {
	ID           string
	UserID       string
	Username     string
	ReportDate   time.Time
	ProjectName  string
	Activity     string
	ProblemFaced *string
	CreatedAt    time.Time
}

// MeetingMinutes is a structured note captured after a site visit,
// persisted for the frontend MOM form.
type MeetingMinutes struct {
	ID              string
	UserID          string
	Username        string
	MeetingDate     time.Time
	ProjectName     string
	Attendees       string
	PointsDiscussed string
	Location        *string
	Latitude        *float64
	Longitude       *float64
	CreatedAt       time.Time
}
