package mocks

import (
	"context"

	"gorm.io/gorm"

	"storycrafter/internal/models"
)

type ProjectRepositoryMock struct {
	CreateFunc      func(ctx context.Context, p *models.ProjectRecord) error
	ListByUserFunc  func(ctx context.Context, userID uint) ([]models.ProjectRecord, error)
	FindForUserFunc func(ctx context.Context, userID, id uint) (*models.ProjectRecord, error)
	UpdateFunc      func(ctx context.Context, p *models.ProjectRecord) error
	DeleteFunc      func(ctx context.Context, userID, id uint) error
}

func (m *ProjectRepositoryMock) Create(ctx context.Context, p *models.ProjectRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *ProjectRepositoryMock) ListByUser(ctx context.Context, userID uint) ([]models.ProjectRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []models.ProjectRecord{}, nil
}

func (m *ProjectRepositoryMock) FindForUser(ctx context.Context, userID, id uint) (*models.ProjectRecord, error) {
	if m.FindForUserFunc != nil {
		return m.FindForUserFunc(ctx, userID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *ProjectRepositoryMock) Update(ctx context.Context, p *models.ProjectRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *ProjectRepositoryMock) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}
