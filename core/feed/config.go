package feed

import "time"

// Config holds configuration for the upstream catalog feeds.
type Config struct {
	// PrimaryURL serves the "on_main" document (categories, marks, parameters...).
	PrimaryURL string `mapstructure:"primary_url" default:"https://bot-igor.ru/api/products?on_main=true"`
	// SecondaryURL serves the full product list.
	SecondaryURL string `mapstructure:"secondary_url" default:"https://bot-igor.ru/api/products?on_main=false"`
	// TimeoutSeconds bounds a whole fetch, from dial to the last body byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Archive enables uploading every raw feed body to object storage.
	Archive bool `mapstructure:"archive" default:"false"`
	// ArchivePrefix is the object key prefix for archived bodies.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"feeds"`
	// ArchiveRetain is how many bodies to keep per feed; 0 keeps all.
	ArchiveRetain int `mapstructure:"archive_retain" default:"100"`
}

// Timeout returns the fetch timeout, defaulting to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
