package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/entities"
	"gorm.io/gorm"
)

type Vacancies struct {
	db *gorm.DB
}

func NewVacanciesRepository(db *gorm.DB) *Vacancies {
	return &Vacancies{db: db}
}

// GetAll returns the seeded catalog in insertion order, positions included.
func (repo *Vacancies) GetAll(ctx context.Context) ([]entities.Vacancy, error) {
	var vacancies []entities.Vacancy
	err := repo.db.WithContext(ctx).
		Preload("Positions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Order("id").
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}

// GetByID returns a vacancy with its positions, or nil when it doesn't exist.
func (repo *Vacancies) GetByID(ctx context.Context, id int) (*entities.Vacancy, error) {
	var vacancy entities.Vacancy
	err := repo.db.WithContext(ctx).
		Preload("Positions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		First(&vacancy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vacancy, nil
}
