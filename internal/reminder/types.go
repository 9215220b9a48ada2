package reminder

import "time"

const (
	// DefaultScanSpec runs the reminder scan every minute.
	DefaultScanSpec = "* * * * *"
	// DefaultDigestSpec sends the morning digest at 07:30.
	DefaultDigestSpec = "30 7 * * *"
	// DefaultWindow matches the scan period.
	DefaultWindow = time.Minute
	// SentTTL is how long a delivered reminder is remembered.
	SentTTL = 24 * time.Hour
	// RetryTTL is how long a failed delivery keeps being retried.
	RetryTTL = 15 * time.Minute
)
