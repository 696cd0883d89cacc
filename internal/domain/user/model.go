package user

import "time"

// User is a registered advocate. Immutable after registration.
type User struct {
	Username     string
	PasswordHash string
	EnrollmentID string // bar enrollment id
	CreatedAt    time.Time
}
