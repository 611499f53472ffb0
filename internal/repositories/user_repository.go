package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"storycrafter/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.UserAccount) error
	FindByID(ctx context.Context, id uint) (*models.UserAccount, error)
	FindByEmail(ctx context.Context, email string) (*models.UserAccount, error)
	Update(ctx context.Context, u *models.UserAccount) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *models.UserAccount) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.UserAccount, error) {
	var u models.UserAccount
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns gorm.ErrRecordNotFound when no account uses the address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	var u models.UserAccount
	if err := r.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, u *models.UserAccount) error {
	return r.db.WithContext(ctx).Save(u).Error
}
