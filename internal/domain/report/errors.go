package report

import "errors"

var (
	ErrReportRangeTooWide = errors.New("report range must not exceed one year")
)
