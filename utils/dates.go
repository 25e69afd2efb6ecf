package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const canonicalDateLayout = "2006-01-02"

// NormalizeDate converts Brazilian DD/MM/YYYY dates to YYYY-MM-DD. An empty
// string becomes today's date; anything else is returned as-is.
func NormalizeDate(dateStr string) string {
	if dateStr == "" {
		return time.Now().Format(canonicalDateLayout)
	}

	parts := strings.Split(dateStr, "/")
	if len(parts) == 3 {
		day, month, year := parts[0], parts[1], parts[2]
		return fmt.Sprintf("%s-%s-%s", year, padTwo(month), padTwo(day))
	}

	return dateStr
}

func padTwo(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// MonthsSince returns the number of whole months between now and the given
// date, using a fixed 30-day month. The difference is absolute, so the result
// is never negative. Unparseable dates count as zero months.
func MonthsSince(dateStr string, now time.Time) int {
	if dateStr == "" {
		return 0
	}

	t, err := time.Parse(canonicalDateLayout, NormalizeDate(dateStr))
	if err != nil {
		return 0
	}

	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}

	return int(math.Floor(diff.Hours() / 24 / 30))
}
