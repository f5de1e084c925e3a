package services

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/logger"
	"github.com/rendyak/karirku/internal/metrics"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type positionCounter interface {
	CountByPosition(ctx context.Context, vacancyID int, position string) (int64, error)
}

// StatsReporter periodically derives the applicant count of every catalog
// position, refreshes the prometheus gauge and logs positions running full.
type StatsReporter struct {
	vacancies    catalogRepository
	applications positionCounter
	cron         *cron.Cron
}

func NewStatsReporter(vacancies catalogRepository, applications positionCounter, schedule string) (*StatsReporter, error) {

	if vacancies == nil {
		return nil, errors.New("vacancies repository is nil")
	}
	if applications == nil {
		return nil, errors.New("applications repository is nil")
	}

	sr := &StatsReporter{
		vacancies:    vacancies,
		applications: applications,
		cron:         cron.New(),
	}

	_, err := sr.cron.AddFunc(schedule, sr.Report)
	if err != nil {
		return nil, err
	}

	sr.cron.Start()
	log.Infof("catalog stats reporter started, schedule: %s", schedule)
	return sr, nil
}

func (sr *StatsReporter) Stop() {
	sr.cron.Stop()
}

func (sr *StatsReporter) Report() {
	ctx := context.Background()

	vacancies, err := sr.vacancies.GetAll(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to get vacancies for stats report: %v", err)
		return
	}

	for _, vacancy := range vacancies {
		for _, position := range vacancy.Positions {
			count, err := sr.applications.CountByPosition(ctx, vacancy.ID, position.Name)
			if err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to count applicants for stats report: %v", err)
				continue
			}

			metrics.PositionApplicants.
				WithLabelValues(strconv.Itoa(vacancy.ID), position.Name).
				Set(float64(count))

			if count >= int64(position.Capacity) {
				log.Infof("position %q at vacancy %d is full (%d/%d)",
					position.Name, vacancy.ID, count, position.Capacity)
			}
		}
	}
}
