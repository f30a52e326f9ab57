package models

import (
	"time"

	id "kleingarten/pkg/domain"
)

// ApplicationStatus is the workflow state of an assignment application
// (Antrag). The plot engine only reads it; the application workflow itself is
// managed elsewhere.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusInReview  ApplicationStatus = "in_review"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
	ApplicationStatusCompleted ApplicationStatus = "completed"
)

// Assignable reports whether an application in this status may receive a plot.
func (s ApplicationStatus) Assignable() bool {
	return s == ApplicationStatusInReview || s == ApplicationStatusApproved
}

// Application is a person's request for a plot assignment.
type Application struct {
	ID        id.ApplicationID  `json:"id"`
	PersonID  id.PersonID       `json:"person_id"`
	PlotID    *id.PlotID        `json:"plot_id,omitempty"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Person is an applicant on the waiting list.
type Person struct {
	ID        id.PersonID `json:"id"`
	FullName  string      `json:"full_name"`
	CreatedAt time.Time   `json:"created_at"`
}
