package entities

import "time"

type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "pending"
	ValidationAccepted ValidationStatus = "accepted"
	ValidationRejected ValidationStatus = "rejected"
)

// ValidationRequest is a user's one-time request to be allowed to apply to
// jobs. A user may submit at most one, ever; the record is never updated or
// deleted afterwards.
type ValidationRequest struct {
	ID             int    `gorm:"primaryKey"`
	UserID         string `gorm:"uniqueIndex"`
	Status         ValidationStatus
	WorkExperience string
	JobCategoryID  string
	JobPosition    string
	ReasonAccepted string
	ValidatorNotes string
	ValidatorID    int
	ValidatorName  string
	CreatedAt      time.Time
}

// ValidationFields is the user-supplied part of a ValidationRequest. All four
// fields are required.
type ValidationFields struct {
	WorkExperience string
	JobCategory    string
	JobPosition    string
	ReasonAccepted string
}

// MissingFields reports which required fields are empty, in a fixed order.
func (f ValidationFields) MissingFields() []string {
	var missing []string
	if f.WorkExperience == "" {
		missing = append(missing, "work_experience")
	}
	if f.JobCategory == "" {
		missing = append(missing, "job_category")
	}
	if f.JobPosition == "" {
		missing = append(missing, "job_position")
	}
	if f.ReasonAccepted == "" {
		missing = append(missing, "reason_accepted")
	}
	return missing
}

func NewValidationRequest(userID string, fields ValidationFields) ValidationRequest {
	return ValidationRequest{
		UserID:         userID,
		Status:         ValidationPending,
		WorkExperience: fields.WorkExperience,
		JobCategoryID:  fields.JobCategory,
		JobPosition:    fields.JobPosition,
		ReasonAccepted: fields.ReasonAccepted,
	}
}
