package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/entities"
	"gorm.io/gorm"
)

type Validations struct {
	db *gorm.DB
}

func NewValidationsRepository(db *gorm.DB) *Validations {
	return &Validations{db: db}
}

// Add stores the request unless the user already submitted one. The existence
// check and the insert run in one transaction so concurrent duplicate
// submissions cannot both succeed; the unique index on user_id backs this up.
func (repo *Validations) Add(ctx context.Context, request *entities.ValidationRequest) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.ValidationRequest{}).
			Where("user_id = ?", request.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return entities.ErrValidationExists
		}
		return tx.Create(request).Error
	})
}

// GetByUser returns the user's validation request, or nil when none exists.
func (repo *Validations) GetByUser(ctx context.Context, userID string) (*entities.ValidationRequest, error) {
	var request entities.ValidationRequest
	err := repo.db.WithContext(ctx).First(&request, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}
