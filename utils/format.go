package utils

import (
	"fmt"
	"time"
)

// FormatLongDate renders a "2006-01-02" date as "January 2nd" for emails and
// confirmation views. Unparseable input is returned as-is.
func FormatLongDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d%s", t.Month().String(), t.Day(), ordinalSuffix(t.Day()))
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
