package utils

import (
	"fmt"
	"time"
)

// FormatDate renders an RFC 3339 timestamp as a human-friendly relative
// date: "Today", "Yesterday", "N days ago" for anything under a week,
// and "Jan 2, 2006" style beyond that. Day distance is counted in whole
// 24-hour periods from now, matching how journal entries and favorites
// display their age.
//
// A timestamp that fails to parse is returned unchanged so a corrupt
// row still renders something instead of breaking a list view.
func FormatDate(now time.Time, iso string) string {
	ts, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}

	diffDays := int(now.Sub(ts).Hours() / 24)

	switch {
	case diffDays == 0:
		return "Today"
	case diffDays == 1:
		return "Yesterday"
	case diffDays < 7:
		return fmt.Sprintf("%d days ago", diffDays)
	default:
		return ts.Format("Jan 2, 2006")
	}
}
