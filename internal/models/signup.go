package models

import "time"

// Signup records a newsletter signup.
//
// Rows are append-only and never deleted; no uniqueness is enforced on the
// email address.
type Signup struct {
	// Id is a generated unique identifier.
	Id string

	Name  string
	Email string

	SignupDate time.Time

	// Synced is a placeholder for a future server-side sync collaborator.
	// Nothing in this layer ever sets it to true.
	Synced bool
}
