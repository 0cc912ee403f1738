package report

import "errors"

var ErrNoHourlyReports = errors.New("no hourly reports found")
