// Package cron schedules daily digest runs.
package cron

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/robfig/cron/v3"
)

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock parses a wall-clock time in HH:MM form.
func ParseClock(clock string) (hour int, minute int, err error) {
	matches := clockRegex.FindStringSubmatch(clock)
	if len(matches) != 3 {
		return 0, 0, hndigest.Errorf(hndigest.EINVALID, "invalid schedule time %q, expected HH:MM", clock)
	}
	hour, _ = strconv.Atoi(matches[1])
	minute, _ = strconv.Atoi(matches[2])
	return hour, minute, nil
}

// Scheduler runs a job once a day at a fixed wall-clock time.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a Scheduler that evaluates schedules in loc.
func NewScheduler(loc *time.Location) *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(loc))}
}

// Schedule registers fn to run daily at the given HH:MM time.
func (s *Scheduler) Schedule(clock string, fn func()) error {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return err
	}

	// Cron field order is minute, hour, day, month, weekday.
	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := s.cron.AddFunc(spec, fn); err != nil {
		return hndigest.Errorf(hndigest.EINTERNAL, "registering schedule: %v", err)
	}
	return nil
}

// Start launches the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and blocks until any running job has finished.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Next returns the next scheduled run time, or the zero time when nothing
// is scheduled yet.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
