package repositories

import (
	"context"

	"gorm.io/gorm"

	"storycrafter/internal/models"
)

// ProjectRepository stores projects scoped by owner. Both the Story API and the client's
// local project store use it.
type ProjectRepository interface {
	Create(ctx context.Context, p *models.ProjectRecord) error
	ListByUser(ctx context.Context, userID uint) ([]models.ProjectRecord, error)
	FindForUser(ctx context.Context, userID, id uint) (*models.ProjectRecord, error)
	Update(ctx context.Context, p *models.ProjectRecord) error
	Delete(ctx context.Context, userID, id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *models.ProjectRecord) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepository) ListByUser(ctx context.Context, userID uint) ([]models.ProjectRecord, error) {
	var projects []models.ProjectRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) FindForUser(ctx context.Context, userID, id uint) (*models.ProjectRecord, error) {
	var p models.ProjectRecord
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) Update(ctx context.Context, p *models.ProjectRecord) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *projectRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.ProjectRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
