package team

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *Member) error
	FindAll(ctx context.Context) ([]Member, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Member, error) {
	var members []Member
	err := r.db.WithContext(ctx).Order("name ASC").Find(&members).Error
	return members, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Update(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Member{}, "id = ?", id).Error
}
