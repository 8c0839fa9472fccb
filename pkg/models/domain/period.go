package domain

import "time"

// Window is a closed calendar-month interval.
type Window struct {
	Start time.Time
	End   time.Time
	Label string // YYYY-MM
}

// DaysInMonth is the number of calendar days covered by the window.
func (w Window) DaysInMonth() int {
	return w.Start.AddDate(0, 1, -1).Day()
}

// Period is an analysis window together with the month it is compared against.
type Period struct {
	Current  Window
	Previous Window
}

// Label is the label of the analysed month.
func (p Period) Label() string {
	return p.Current.Label
}
