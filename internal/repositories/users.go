package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/entities"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

// GetByCredentials returns the user matching the id card number and password,
// or nil when no such user exists. Plaintext comparison is deliberate: the
// seeded user table is a stand-in for a real identity provider.
func (repo *Users) GetByCredentials(ctx context.Context, idCardNumber, password string) (*entities.User, error) {
	var user entities.User
	err := repo.db.WithContext(ctx).
		Where("id_card_number = ? AND password = ?", idCardNumber, password).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
