package server

import (
	"time"

	"github.com/rendyak/karirku/internal/entities"
	"github.com/rendyak/karirku/internal/services"
	"github.com/samber/lo"
)

type validatorView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type validationView struct {
	ID             int                       `json:"id"`
	UserID         string                    `json:"user_id"`
	Status         entities.ValidationStatus `json:"status"`
	WorkExperience string                    `json:"work_experience"`
	JobCategoryID  string                    `json:"job_category_id"`
	JobPosition    string                    `json:"job_position"`
	ReasonAccepted string                    `json:"reason_accepted"`
	ValidatorNotes string                    `json:"validator_notes"`
	Validator      validatorView             `json:"validator"`
	CreatedAt      time.Time                 `json:"created_at"`
}

func toValidationView(request entities.ValidationRequest) validationView {
	return validationView{
		ID:             request.ID,
		UserID:         request.UserID,
		Status:         request.Status,
		WorkExperience: request.WorkExperience,
		JobCategoryID:  request.JobCategoryID,
		JobPosition:    request.JobPosition,
		ReasonAccepted: request.ReasonAccepted,
		ValidatorNotes: request.ValidatorNotes,
		Validator:      validatorView{ID: request.ValidatorID, Name: request.ValidatorName},
		CreatedAt:      request.CreatedAt,
	}
}

type positionView struct {
	Position      string `json:"position"`
	Capacity      int    `json:"capacity"`
	ApplyCapacity int    `json:"apply_capacity"`
	ApplyCount    int    `json:"apply_count"`
}

type vacancyView struct {
	ID                int               `json:"id"`
	Category          entities.Category `json:"category"`
	Company           string            `json:"company"`
	Address           string            `json:"address"`
	Description       string            `json:"description"`
	AvailablePosition []positionView    `json:"available_position"`
}

func toVacancyView(overview services.VacancyOverview) vacancyView {
	return vacancyView{
		ID:          overview.Vacancy.ID,
		Category:    overview.Vacancy.Category(),
		Company:     overview.Vacancy.Company,
		Address:     overview.Vacancy.Address,
		Description: overview.Vacancy.Description,
		AvailablePosition: lo.Map(overview.Positions, func(position services.PositionStatus, _ int) positionView {
			return positionView{
				Position:      position.Name,
				Capacity:      position.Capacity,
				ApplyCapacity: position.ApplyCapacity,
				ApplyCount:    position.ApplyCount,
			}
		}),
	}
}

type appliedPositionView struct {
	Position    string               `json:"position"`
	ApplyStatus entities.ApplyStatus `json:"apply_status"`
	Notes       string               `json:"notes"`
}

type appliedVacancyView struct {
	ID       int                   `json:"id"`
	Category entities.Category     `json:"category"`
	Company  string                `json:"company"`
	Address  string                `json:"address"`
	Position []appliedPositionView `json:"position"`
}

func toAppliedVacancyView(applied services.AppliedVacancy) appliedVacancyView {
	return appliedVacancyView{
		ID:       applied.VacancyID,
		Category: applied.Category,
		Company:  applied.Company,
		Address:  applied.Address,
		Position: lo.Map(applied.Positions, func(position entities.ApplicationPosition, _ int) appliedPositionView {
			return appliedPositionView{
				Position:    position.Position,
				ApplyStatus: position.ApplyStatus,
				Notes:       position.Notes,
			}
		}),
	}
}
