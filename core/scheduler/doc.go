// Package scheduler runs background jobs on cron schedules (robfig/cron).
// Panicking jobs are recovered and logged so one bad run never stops the
// schedule.
package scheduler
