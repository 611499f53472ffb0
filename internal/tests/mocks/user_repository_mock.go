package mocks

import (
	"context"

	"gorm.io/gorm"

	"storycrafter/internal/models"
)

type UserRepositoryMock struct {
	CreateFunc      func(ctx context.Context, u *models.UserAccount) error
	FindByIDFunc    func(ctx context.Context, id uint) (*models.UserAccount, error)
	FindByEmailFunc func(ctx context.Context, email string) (*models.UserAccount, error)
	UpdateFunc      func(ctx context.Context, u *models.UserAccount) error
}

func (m *UserRepositoryMock) Create(ctx context.Context, u *models.UserAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, id uint) (*models.UserAccount, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UserRepositoryMock) Update(ctx context.Context, u *models.UserAccount) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}
