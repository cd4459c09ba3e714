package models

import "time"

// CheckIn records a single volunteer check-in at an event.
//
// Rows are append-only: every submission creates a new row with a fresh id,
// and the same volunteer may check into the same event code more than once.
type CheckIn struct {
	// Id is a generated unique identifier.
	Id string

	EventCode     string
	EventName     string
	VolunteerName string

	CheckInTime time.Time
}
