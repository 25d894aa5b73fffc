package hndigest

import "time"

// Window is a half-open UTC time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// PriorDay returns the window covering the full UTC calendar day that
// preceded now. A run started shortly after midnight UTC therefore covers
// the day that just ended, regardless of the host's local timezone.
func PriorDay(now time.Time) Window {
	midnight := now.UTC().Truncate(24 * time.Hour)
	return Window{
		Start: midnight.Add(-24 * time.Hour),
		End:   midnight,
	}
}

// Date returns the calendar date the window covers.
func (w Window) Date() time.Time { return w.Start }

// Label returns the window's date in YYYY-MM-DD form. It names the output
// artifact, so one run per day overwrites rather than accumulates.
func (w Window) Label() string {
	return w.Start.Format("2006-01-02")
}

// Title returns the window's date in long form for the rendered document.
func (w Window) Title() string {
	return w.Start.Format("January 2, 2006")
}
