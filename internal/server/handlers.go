package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/entities"
	"github.com/rendyak/karirku/internal/logger"
	"github.com/rendyak/karirku/internal/services"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type Handlers struct {
	auth     *services.Auth
	workflow *services.Workflow
}

func NewHandlers(auth *services.Auth, workflow *services.Workflow) *Handlers {
	return &Handlers{auth: auth, workflow: workflow}
}

func (h *Handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid field"})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.IDCardNumber, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "ID Card Number or Password incorrect"})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":      user.Name,
		"born_date": user.BornDate,
		"gender":    user.Gender,
		"address":   user.Address,
		"token":     token,
		"regional":  user.Regional(),
	})
}

func (h *Handlers) logout(c *gin.Context) {
	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout success"})
}

func (h *Handlers) submitValidation(c *gin.Context) {
	var req validationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid field"})
		return
	}

	_, err := h.workflow.SubmitValidation(c.Request.Context(), c.Query("token"), entities.ValidationFields{
		WorkExperience: req.WorkExperience,
		JobCategory:    req.JobCategory,
		JobPosition:    req.JobPosition,
		ReasonAccepted: req.ReasonAccepted,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request data validation sent successful"})
}

func (h *Handlers) validationStatus(c *gin.Context) {
	request, err := h.workflow.ValidationStatus(c.Request.Context(), c.Query("token"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	// "no validation yet" is a regular answer, not an error
	if request == nil {
		c.JSON(http.StatusOK, gin.H{"validation": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"validation": toValidationView(*request)})
}

func (h *Handlers) vacancies(c *gin.Context) {
	overviews, err := h.workflow.Vacancies(c.Request.Context(), c.Query("token"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vacancies": lo.Map(overviews,
		func(overview services.VacancyOverview, _ int) vacancyView {
			return toVacancyView(overview)
		})})
}

func (h *Handlers) submitApplication(c *gin.Context) {
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid field"})
		return
	}

	_, err := h.workflow.SubmitApplication(c.Request.Context(), c.Query("token"),
		req.VacancyID, req.Positions, req.Notes)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid field", "errors": fieldErrors(req)})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Applying for job successful"})
}

func (h *Handlers) applications(c *gin.Context) {
	applied, err := h.workflow.ApplicationsByUser(c.Request.Context(), c.Query("token"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vacancies": lo.Map(applied,
		func(vacancy services.AppliedVacancy, _ int) appliedVacancyView {
			return toAppliedVacancyView(vacancy)
		})})
}

// respondError maps core failures to transport codes. The kinds are the
// contract; the codes are presentation.
func (h *Handlers) respondError(c *gin.Context, err error) {

	var missingFields *entities.MissingFieldsError
	var positionFull *entities.PositionFullError
	var unknownPosition *entities.UnknownPositionError

	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized user"})
	case errors.As(err, &missingFields):
		fields := map[string][]string{}
		for _, field := range missingFields.Fields {
			fields[field] = []string{fmt.Sprintf("The %s field is required.", field)}
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Semua field harus diisi", "errors": fields})
	case errors.Is(err, entities.ErrValidationExists):
		c.JSON(http.StatusConflict, gin.H{"message": "Validation request already exists"})
	case errors.Is(err, entities.ErrVacancyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Job vacancy not found"})
	case errors.Is(err, entities.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"message": "Application for a job can only be once"})
	case errors.As(err, &positionFull):
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("Position %q is already full", positionFull.Position)})
	case errors.As(err, &unknownPosition):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid field", "errors": map[string][]string{
			"positions": {fmt.Sprintf("The position %q is not offered by this vacancy.", unknownPosition.Position)},
		}})
	default:
		h.serverError(c, err)
	}
}

func (h *Handlers) serverError(c *gin.Context, err error) {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
		Errorf("unexpected error handling %s: %v", c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
