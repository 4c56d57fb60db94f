package upload

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=upload_repo.go -destination=mock/upload_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, up *Upload) error
	FindAll(ctx context.Context) ([]Upload, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Upload, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, up *Upload) error {
	return r.db.WithContext(ctx).Create(up).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Upload, error) {
	var uploads []Upload
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&uploads).Error
	return uploads, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Upload, error) {
	var up Upload
	err := r.db.WithContext(ctx).First(&up, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &up, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Upload{}, "id = ?", id).Error
}
