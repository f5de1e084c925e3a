package services

import "github.com/rendyak/karirku/internal/entities"

// ReviewDecision is the outcome a reviewer assigns to a fresh validation
// request.
type ReviewDecision struct {
	Status        entities.ValidationStatus
	Notes         string
	ValidatorID   int
	ValidatorName string
}

// ReviewPolicy decides the initial status of a validation request. The
// pending/accepted/rejected lifecycle exists in the model so that a real
// reviewer (a human or an external service) can drive it; AutoAccept is just
// the default configuration, not a fact of the domain.
type ReviewPolicy func(request entities.ValidationRequest) ReviewDecision

// AutoAccept approves every request on the spot.
func AutoAccept(_ entities.ValidationRequest) ReviewDecision {
	return ReviewDecision{
		Status:        entities.ValidationAccepted,
		Notes:         "Data validation approved automatically for demo",
		ValidatorID:   1,
		ValidatorName: "Admin Validator",
	}
}
