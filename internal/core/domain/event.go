package domain

import "time"

// Audit actions and outcomes recorded for authentication activity.
const (
	AuditActionSignup = "signup"
	AuditActionLogin  = "login"

	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// AuthEvent is an audit-trail entry for a signup or login attempt.
type AuthEvent struct {
	Email     string
	Action    string
	Outcome   string
	Reason    string // failure cause, empty on success
	Timestamp time.Time
}
