package period

import (
	"time"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
)

const labelLayout = "2006-01"

// Resolve returns the calendar month containing asOf and the month before it.
// Only the year and month of asOf are used, in asOf's location.
func Resolve(asOf time.Time) domain.Period {
	current := MonthWindow(asOf)
	return domain.Period{
		Current:  current,
		Previous: MonthWindow(current.Start.AddDate(0, -1, 0)),
	}
}

// MonthWindow returns the window spanning the month of t.
func MonthWindow(t time.Time) domain.Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return domain.Window{
		Start: start,
		End:   end,
		Label: start.Format(labelLayout),
	}
}

// ParseAsOf parses the reference dates accepted by the API and the CLI:
// RFC 3339 timestamps, plain dates and bare months. An empty value means now.
func ParseAsOf(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	var lastErr error
	for _, layout := range []string{time.RFC3339, time.DateOnly, labelLayout} {
		t, err := time.ParseInLocation(layout, value, now.Location())
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
