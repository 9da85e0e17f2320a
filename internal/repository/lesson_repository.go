package repository

import (
	"context"

	"gorm.io/gorm"

	"edumodules/internal/model"
)

// LessonRepository defines lesson persistence operations.
type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	Update(ctx context.Context, lesson *model.Lesson) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Lesson, error)
	List(ctx context.Context, ownerID *uint, search string, offset, limit int) ([]model.Lesson, int64, error)
}

type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository builds a GORM-backed repository.
func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *lessonRepository) Update(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Save(lesson).Error
}

func (r *lessonRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Lesson{}, id).Error
}

func (r *lessonRepository) FindByID(ctx context.Context, id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.db.WithContext(ctx).First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// List returns a page of lessons. A non-nil ownerID scopes the result to
// that owner; search matches title, description and content.
func (r *lessonRepository) List(ctx context.Context, ownerID *uint, search string, offset, limit int) ([]model.Lesson, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Lesson{})
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR content LIKE ?", like, like, like)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var lessons []model.Lesson
	if err := query.Offset(offset).Limit(limit).Find(&lessons).Error; err != nil {
		return nil, 0, err
	}
	return lessons, count, nil
}
