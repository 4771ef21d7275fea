package models

// Common constants used across the application
const (
	// UnknownValue is the fallback value when data is unavailable (e.g. a
	// missing driver name on a log sheet header).
	UnknownValue = "N/A"

	// LogDateLayout is the calendar date format used by duty log entries.
	LogDateLayout = "2006-01-02"
)
