package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/entities"
	"github.com/rendyak/karirku/internal/events"
	"github.com/rendyak/karirku/internal/metrics"
	"github.com/samber/lo"
)

type validationRepository interface {
	Add(ctx context.Context, request *entities.ValidationRequest) error
	GetByUser(ctx context.Context, userID string) (*entities.ValidationRequest, error)
}

type applicationRepository interface {
	Add(ctx context.Context, application *entities.Application, capacities map[string]int) error
	GetByUser(ctx context.Context, userID string) ([]entities.Application, error)
	CountByPosition(ctx context.Context, vacancyID int, position string) (int64, error)
}

type catalogRepository interface {
	GetAll(ctx context.Context) ([]entities.Vacancy, error)
	GetByID(ctx context.Context, id int) (*entities.Vacancy, error)
}

// PositionStatus is a catalog position together with its live applicant count.
type PositionStatus struct {
	Name          string
	Capacity      int
	ApplyCapacity int
	ApplyCount    int
}

// VacancyOverview is a catalog entry as shown to an authenticated job seeker.
type VacancyOverview struct {
	Vacancy   entities.Vacancy
	Positions []PositionStatus
}

// AppliedVacancy is one of the caller's applications annotated with the
// vacancy's display fields from the catalog.
type AppliedVacancy struct {
	VacancyID int
	Category  entities.Category
	Company   string
	Address   string
	Positions []entities.ApplicationPosition
}

// Workflow is the entry surface the presentation layer calls. Every operation
// resolves the caller's identity first and fails with ErrUnauthenticated
// before any domain logic runs.
type Workflow struct {
	resolver     IdentityResolver
	validations  validationRepository
	applications applicationRepository
	vacancies    catalogRepository
	review       ReviewPolicy
	bus          EventBus.Bus
}

func NewWorkflow(resolver IdentityResolver, validations validationRepository,
	applications applicationRepository, vacancies catalogRepository,
	review ReviewPolicy, bus EventBus.Bus) (*Workflow, error) {

	if resolver == nil {
		return nil, errors.New("identity resolver is nil")
	}
	if validations == nil {
		return nil, errors.New("validations repository is nil")
	}
	if applications == nil {
		return nil, errors.New("applications repository is nil")
	}
	if vacancies == nil {
		return nil, errors.New("vacancies repository is nil")
	}
	if review == nil {
		return nil, errors.New("review policy is nil")
	}
	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	return &Workflow{
		resolver:     resolver,
		validations:  validations,
		applications: applications,
		vacancies:    vacancies,
		review:       review,
		bus:          bus,
	}, nil
}

// SubmitValidation stores the caller's one-time validation request. The
// configured review policy assigns the initial status before the record is
// written, so the stored status is final from the caller's point of view.
func (w *Workflow) SubmitValidation(ctx context.Context, token string,
	fields entities.ValidationFields) (*entities.ValidationRequest, error) {

	userID, err := w.resolver.Resolve(token)
	if err != nil {
		return nil, err
	}

	if missing := fields.MissingFields(); len(missing) > 0 {
		return nil, &entities.MissingFieldsError{Fields: missing}
	}

	request := entities.NewValidationRequest(userID, fields)
	decision := w.review(request)
	request.Status = decision.Status
	request.ValidatorNotes = decision.Notes
	request.ValidatorID = decision.ValidatorID
	request.ValidatorName = decision.ValidatorName

	if err = w.validations.Add(ctx, &request); err != nil {
		return nil, err
	}

	metrics.ValidationsSubmittedCounter.Inc()
	w.bus.Publish(events.ValidationSubmittedTopic, events.ValidationSubmitted{Request: request})
	return &request, nil
}

// ValidationStatus returns the caller's validation request, or nil when none
// was submitted yet; "no validation" is not an error.
func (w *Workflow) ValidationStatus(ctx context.Context, token string) (*entities.ValidationRequest, error) {
	userID, err := w.resolver.Resolve(token)
	if err != nil {
		return nil, err
	}
	return w.validations.GetByUser(ctx, userID)
}

// Vacancies returns the full catalog in seed order with live applicant counts.
func (w *Workflow) Vacancies(ctx context.Context, token string) ([]VacancyOverview, error) {
	if _, err := w.resolver.Resolve(token); err != nil {
		return nil, err
	}

	vacancies, err := w.vacancies.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]VacancyOverview, 0, len(vacancies))
	for _, vacancy := range vacancies {
		overview, err := w.overviewOf(ctx, vacancy)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, overview)
	}
	return overviews, nil
}

// AvailablePositions returns the positions of a vacancy that still admit new
// applicants.
func (w *Workflow) AvailablePositions(ctx context.Context, vacancyID int) ([]PositionStatus, error) {
	vacancy, err := w.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, entities.ErrVacancyNotFound
	}

	overview, err := w.overviewOf(ctx, *vacancy)
	if err != nil {
		return nil, err
	}

	var available []PositionStatus
	for _, position := range overview.Positions {
		if position.ApplyCount < position.Capacity {
			available = append(available, position)
		}
	}
	return available, nil
}

// SubmitApplication records the caller's application to a vacancy. All
// requested positions must exist and have free capacity; otherwise nothing is
// recorded.
func (w *Workflow) SubmitApplication(ctx context.Context, token string, vacancyID int,
	positions []string, notes string) (*entities.Application, error) {

	userID, err := w.resolver.Resolve(token)
	if err != nil {
		return nil, err
	}

	if vacancyID == 0 || len(positions) == 0 {
		return nil, entities.ErrInvalidInput
	}
	// a position may be named once per submission, otherwise repeated names
	// would each claim a capacity slot
	if len(lo.Uniq(positions)) != len(positions) {
		return nil, entities.ErrInvalidInput
	}

	vacancy, err := w.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, entities.ErrVacancyNotFound
	}

	capacities := make(map[string]int, len(positions))
	for _, name := range positions {
		position, ok := vacancy.Position(name)
		if !ok {
			return nil, &entities.UnknownPositionError{Position: name}
		}
		capacities[name] = position.Capacity
	}

	application := entities.NewApplication(userID, vacancyID, positions, notes)
	if err = w.applications.Add(ctx, &application, capacities); err != nil {
		var full *entities.PositionFullError
		switch {
		case errors.Is(err, entities.ErrDuplicateApplication):
			metrics.ApplicationsRejectedCounter.WithLabelValues("duplicate").Inc()
		case errors.As(err, &full):
			metrics.ApplicationsRejectedCounter.WithLabelValues("position_full").Inc()
		}
		return nil, err
	}

	metrics.ApplicationsSubmittedCounter.Inc()
	w.bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{
		Application: application,
		Company:     vacancy.Company,
	})
	return &application, nil
}

// ApplicationsByUser returns the caller's applications annotated with the
// vacancy display fields from the catalog.
func (w *Workflow) ApplicationsByUser(ctx context.Context, token string) ([]AppliedVacancy, error) {
	userID, err := w.resolver.Resolve(token)
	if err != nil {
		return nil, err
	}

	applications, err := w.applications.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	applied := make([]AppliedVacancy, 0, len(applications))
	for _, application := range applications {
		vacancy, err := w.vacancies.GetByID(ctx, application.VacancyID)
		if err != nil {
			return nil, err
		}
		if vacancy == nil {
			// Catalog rows are never deleted, so a dangling application is
			// corrupt state, not a business-rule failure.
			return nil, errors.Errorf("application %d references unknown vacancy %d",
				application.ID, application.VacancyID)
		}
		applied = append(applied, AppliedVacancy{
			VacancyID: vacancy.ID,
			Category:  vacancy.Category(),
			Company:   vacancy.Company,
			Address:   vacancy.Address,
			Positions: application.Positions,
		})
	}
	return applied, nil
}

func (w *Workflow) overviewOf(ctx context.Context, vacancy entities.Vacancy) (VacancyOverview, error) {
	positions := make([]PositionStatus, 0, len(vacancy.Positions))
	for _, position := range vacancy.Positions {
		count, err := w.applications.CountByPosition(ctx, vacancy.ID, position.Name)
		if err != nil {
			return VacancyOverview{}, err
		}
		positions = append(positions, PositionStatus{
			Name:          position.Name,
			Capacity:      position.Capacity,
			ApplyCapacity: position.ApplyCapacity,
			ApplyCount:    int(count),
		})
	}
	return VacancyOverview{Vacancy: vacancy, Positions: positions}, nil
}
