package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/chris-buckminster/hn-daily-digest/cron"
)

// Run executes the schedule command. It blocks until interrupted.
func (c *ScheduleCmd) Run(deps *Dependencies) error {
	scheduler := cron.NewScheduler(deps.Config.Location())

	err := scheduler.Schedule(deps.Config.ScheduleTime, func() {
		if err := generateOnce(deps); err != nil {
			deps.Logger.Error("scheduled run failed", "err", err)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hndigest.ErrorMessage(err))
		return err
	}

	scheduler.Start()
	defer scheduler.Stop()

	deps.Logger.Info("scheduler started",
		"at", deps.Config.ScheduleTime,
		"timezone", deps.Config.Timezone,
		"next", scheduler.Next(),
	)
	fmt.Fprintf(deps.Stdout, "Generating the digest daily at %s (%s). Press Ctrl-C to stop.\n",
		deps.Config.ScheduleTime, deps.Config.Timezone)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-deps.Ctx.Done():
	case s := <-sig:
		deps.Logger.Info("shutting down", "signal", s.String())
	}
	return nil
}
