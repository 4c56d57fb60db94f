package contract

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=contract_repo.go -destination=mock/contract_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, ct *Contract) error
	FindAll(ctx context.Context) ([]Contract, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Contract, error)
	Update(ctx context.Context, ct *Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ct *Contract) error {
	return r.db.WithContext(ctx).Create(ct).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Contract, error) {
	var contracts []Contract
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Contract, error) {
	var ct Contract
	err := r.db.WithContext(ctx).First(&ct, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Contract, error) {
	var contracts []Contract
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&contracts).Error
	return contracts, err
}

func (r *repository) Update(ctx context.Context, ct *Contract) error {
	return r.db.WithContext(ctx).Save(ct).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Contract{}, "id = ?", id).Error
}
