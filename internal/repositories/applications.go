package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/entities"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

// Add records the application unless the user already applied to the vacancy
// or any requested position is at capacity. Both checks and the insert run in
// one transaction: either every requested position is admitted or nothing is
// written. capacities maps each requested position name to its hard limit.
func (repo *Applications) Add(ctx context.Context, application *entities.Application, capacities map[string]int) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Application{}).
			Where("user_id = ? AND vacancy_id = ?", application.UserID, application.VacancyID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return entities.ErrDuplicateApplication
		}

		// admitted tracks slots claimed by this submission itself, so a
		// position named twice counts twice against its capacity
		admitted := make(map[string]int64, len(capacities))
		for _, position := range application.Positions {
			capacity := capacities[position.Position]
			applicants, err := countByPosition(tx, application.VacancyID, position.Position)
			if err != nil {
				return err
			}
			if applicants+admitted[position.Position] >= int64(capacity) {
				return &entities.PositionFullError{Position: position.Position}
			}
			admitted[position.Position]++
		}

		return tx.Create(application).Error
	})
}

// GetByUser returns the user's applications in submission order.
func (repo *Applications) GetByUser(ctx context.Context, userID string) ([]entities.Application, error) {
	var applications []entities.Application
	err := repo.db.WithContext(ctx).
		Preload("Positions").
		Order("id").
		Find(&applications, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// CountByPosition returns the number of non-rejected applicants recorded for
// a position at a vacancy. This is the single source of truth for apply_count.
func (repo *Applications) CountByPosition(ctx context.Context, vacancyID int, position string) (int64, error) {
	return countByPosition(repo.db.WithContext(ctx), vacancyID, position)
}

func countByPosition(db *gorm.DB, vacancyID int, position string) (int64, error) {
	var count int64
	err := db.Model(&entities.ApplicationPosition{}).
		Where("vacancy_id = ? AND position = ? AND apply_status <> ?",
			vacancyID, position, entities.ApplyRejected).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count applicants")
	}
	return count, nil
}
