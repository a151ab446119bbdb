package report

import (
	"fmt"
	"time"
)

// missingValue marks an absent or unparseable value on the page. The
// sanitizer rewrites it to a plain dash before drawing.
const missingValue = "—"

// humanDate renders a timestamp as e.g. "Monday 5th Aug '24". A nil
// timestamp renders as the missing-value placeholder.
func humanDate(t *time.Time) string {
	if t == nil {
		return missingValue
	}
	return fmt.Sprintf("%s %d%s %s '%02d",
		t.Weekday().String(),
		t.Day(),
		ordinalSuffix(t.Day()),
		t.Month().String()[:3],
		t.Year()%100,
	)
}

// ordinalSuffix returns the English ordinal suffix for a day of month.
// 11th, 12th and 13th are irregular.
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

// dateToken renders the ddmmyy token used in generated file names.
func dateToken(t time.Time) string {
	return t.Format("020106")
}
