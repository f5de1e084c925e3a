package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rendyak/karirku/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.User{})
	if err != nil {
		return fmt.Errorf("failed to migrate User entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Vacancy{}, entities.JobPosition{})
	if err != nil {
		return fmt.Errorf("failed to migrate Vacancy entities: %w", err)
	}

	err = c.DB.AutoMigrate(entities.ValidationRequest{})
	if err != nil {
		return fmt.Errorf("failed to migrate ValidationRequest entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Application{}, entities.ApplicationPosition{})
	if err != nil {
		return fmt.Errorf("failed to migrate Application entities: %w", err)
	}

	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_user_vacancy ON applications (user_id, vacancy_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	var usersCount int64
	if err = c.DB.Model(entities.User{}).Count(&usersCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if usersCount == 0 {
		if err = c.seedUsers(); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	var vacanciesCount int64
	if err = c.DB.Model(entities.Vacancy{}).Count(&vacanciesCount).Error; err != nil {
		return fmt.Errorf("failed to count vacancies: %w", err)
	}
	if vacanciesCount == 0 {
		if err = c.seedVacancies(); err != nil {
			return fmt.Errorf("failed to seed vacancies: %w", err)
		}
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
