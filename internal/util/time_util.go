package util

import (
	"time"
)

// DateLayout is the wire format for trading dates.
const DateLayout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
