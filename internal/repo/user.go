package repo

import (
	"context"

	"github.com/Skotchmaster/category_service/internal/models"
)

// CreateUser inserts a new user. A duplicate username or email
// surfaces as gorm.ErrDuplicatedKey; the caller must not reveal which
// of the two collided.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
