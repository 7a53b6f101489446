package models

import "time"

// Layouts used for the string-typed date columns of the spreadsheet.
const (
	// TimestampLayout matches JavaScript's Date.toISOString so rows written
	// before the Go backend existed keep sorting correctly.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
	DateLayout      = "2006-01-02"
)

// FormatTimestamp renders t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatDate renders the UTC calendar date of t
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
