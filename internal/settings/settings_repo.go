package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, setting *Setting) error
	FindAll(ctx context.Context) ([]Setting, error)
	FindByKey(ctx context.Context, key string) (*Setting, error)
	DeleteByKey(ctx context.Context, key string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert writes by key so the caller never has to care whether the setting
// existed before.
func (r *repository) Upsert(ctx context.Context, setting *Setting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(setting).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Setting, error) {
	var settings []Setting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *repository) FindByKey(ctx context.Context, key string) (*Setting, error) {
	var setting Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *repository) DeleteByKey(ctx context.Context, key string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Setting{}, "key = ?", key)
	return res.RowsAffected, res.Error
}
