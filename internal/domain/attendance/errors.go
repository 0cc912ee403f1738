package attendance

import "errors"

var (
	ErrInvalidMonth       = errors.New("month must be in YYYY-MM format")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrReportAccessDenied = errors.New("you may only view your own attendance report")
)
