package handler

// TimeFormat is the standard time format for API responses (RFC3339 with milliseconds, UTC)
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Version is reported by the health endpoint.
const Version = "1.0.0"
