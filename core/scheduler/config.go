package scheduler

import "time"

// Config controls the periodic sync trigger.
type Config struct {
	// Enabled turns the periodic trigger on.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// IntervalSeconds is the delay between two triggers.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"60"`
	// RunOnStart fires one cycle as soon as the service starts.
	RunOnStart bool `mapstructure:"run_on_start" default:"true"`
}

// Interval returns the trigger period, defaulting to one minute.
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}
