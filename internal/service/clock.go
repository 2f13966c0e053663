package service

import "time"

// nowISO returns the current UTC time in the ISO-8601 layout used for every
// date field in the document.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
