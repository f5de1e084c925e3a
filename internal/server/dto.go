package server

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	})
}

type loginRequest struct {
	IDCardNumber string `json:"id_card_number"`
	Password     string `json:"password"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

type validationRequest struct {
	WorkExperience string `json:"work_experience"`
	JobCategory    string `json:"job_category"`
	JobPosition    string `json:"job_position"`
	ReasonAccepted string `json:"reason_accepted"`
}

type applicationRequest struct {
	VacancyID int      `json:"vacancy_id" validate:"required"`
	Positions []string `json:"positions" validate:"required,min=1"`
	Notes     string   `json:"notes"`
}

// fieldErrors maps validator violations to the per-field message lists the
// API contract promises, e.g. {"vacancy_id": ["The vacancy id field is required."]}.
func fieldErrors(request any) map[string][]string {
	result := map[string][]string{}

	err := validate.Struct(request)
	if err == nil {
		return result
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		for _, violation := range violations {
			field := violation.Field()
			result[field] = append(result[field],
				fmt.Sprintf("The %s field is required.", strings.ReplaceAll(field, "_", " ")))
		}
	}
	return result
}
