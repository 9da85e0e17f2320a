package repository

import (
	"context"

	"gorm.io/gorm"

	"edumodules/internal/model"
)

// ModuleRepository defines module persistence operations.
type ModuleRepository interface {
	Create(ctx context.Context, module *model.Module) error
	Update(ctx context.Context, module *model.Module) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Module, error)
	List(ctx context.Context, ownerID *uint, search string, offset, limit int) ([]model.Module, int64, error)
}

type moduleRepository struct {
	db *gorm.DB
}

// NewModuleRepository builds a GORM-backed repository.
func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) Create(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Create(module).Error
}

// Update persists the module's own columns. The lesson association is
// omitted so an edit never rewrites lesson rows.
func (r *moduleRepository) Update(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Omit("Lessons").Save(module).Error
}

// Delete removes a module together with its lessons.
func (r *moduleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Module{}, id).Error
	})
}

func (r *moduleRepository) FindByID(ctx context.Context, id uint) (*model.Module, error) {
	var module model.Module
	if err := r.db.WithContext(ctx).Preload("Lessons").First(&module, id).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

// List returns a page of modules. A non-nil ownerID scopes the result to
// that owner; search matches title and description.
func (r *moduleRepository) List(ctx context.Context, ownerID *uint, search string, offset, limit int) ([]model.Module, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Module{})
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var modules []model.Module
	if err := query.Preload("Lessons").Offset(offset).Limit(limit).Find(&modules).Error; err != nil {
		return nil, 0, err
	}
	return modules, count, nil
}
