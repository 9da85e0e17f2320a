package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"edumodules/internal/authz"
	"edumodules/internal/cache"
	apperrors "edumodules/internal/errors"
	"edumodules/internal/model"
	"edumodules/internal/repository"
)

// LessonInput carries updatable lesson fields. Nil means the field was
// absent from the payload.
type LessonInput struct {
	Title       *string
	Description *string
	Preview     *string
	VideoURL    *string
	Content     *string
	ModuleID    *uint
}

// LessonList is the paginated list envelope for lessons.
type LessonList struct {
	Count    int64          `json:"count"`
	Next     *int           `json:"next"`
	Previous *int           `json:"previous"`
	Results  []model.Lesson `json:"results"`
}

// LessonService exposes lesson CRUD. Attaching a lesson to a module runs
// the module reference through the ownership validator.
type LessonService interface {
	Create(ctx context.Context, actor authz.Actor, lesson *model.Lesson) (*model.Lesson, error)
	List(ctx context.Context, actor authz.Actor, params ListParams) (*LessonList, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*model.Lesson, error)
	Update(ctx context.Context, actor authz.Actor, id uint, input LessonInput) (*model.Lesson, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type lessonService struct {
	repo    repository.LessonRepository
	modules repository.ModuleRepository
	cache   *cache.Client
}

// NewLessonService builds a LessonService.
func NewLessonService(repo repository.LessonRepository, modules repository.ModuleRepository, cache *cache.Client) LessonService {
	return &lessonService{repo: repo, modules: modules, cache: cache}
}

// checkModuleOwner resolves a module reference and validates that the
// actor may attach lessons to it. An unknown id validates like a value
// that is not a module at all.
func (s *lessonService) checkModuleOwner(ctx context.Context, actor authz.Actor, moduleID uint) error {
	module, err := s.modules.FindByID(ctx, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			module = nil
		} else {
			return fmt.Errorf("find module: %w", err)
		}
	}
	_, err = authz.ValidateModuleOwner(module, actor)
	return err
}

// invalidateModule drops the cached detail of a module whose lesson set
// changed.
func (s *lessonService) invalidateModule(ctx context.Context, moduleID *uint) {
	if moduleID != nil {
		_ = s.cache.Delete(ctx, moduleCacheKey(*moduleID))
	}
}

// Create stamps the lesson's owner with the acting identity. Moderators
// cannot create content, and the module reference, when present, must be
// owned by the actor.
func (s *lessonService) Create(ctx context.Context, actor authz.Actor, lesson *model.Lesson) (*model.Lesson, error) {
	if err := authz.CanCreateContent(actor); err != nil {
		return nil, err
	}
	if lesson.ModuleID != nil {
		if err := s.checkModuleOwner(ctx, actor, *lesson.ModuleID); err != nil {
			return nil, err
		}
	}

	ownerID := actor.ID
	lesson.OwnerID = &ownerID
	if err := s.repo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}
	s.invalidateModule(ctx, lesson.ModuleID)
	return lesson, nil
}

// List returns the lessons visible to the actor, scoped the same way as
// module listing.
func (s *lessonService) List(ctx context.Context, actor authz.Actor, params ListParams) (*LessonList, error) {
	page, size, offset := params.normalize()

	lessons, count, err := s.repo.List(ctx, authz.ListScope(actor), params.Search, offset, size)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	next, previous := pageLinks(page, size, count)
	return &LessonList{Count: count, Next: next, Previous: previous, Results: lessons}, nil
}

func (s *lessonService) Get(ctx context.Context, actor authz.Actor, id uint) (*model.Lesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	if err := authz.CanViewContent(actor, lesson.OwnerID); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *lessonService) Update(ctx context.Context, actor authz.Actor, id uint, input LessonInput) (*model.Lesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	if err := authz.CanViewContent(actor, lesson.OwnerID); err != nil {
		return nil, err
	}

	previousModule := lesson.ModuleID
	if input.ModuleID != nil {
		if err := s.checkModuleOwner(ctx, actor, *input.ModuleID); err != nil {
			return nil, err
		}
		lesson.ModuleID = input.ModuleID
	}
	if input.Title != nil {
		lesson.Title = *input.Title
	}
	if input.Description != nil {
		lesson.Description = *input.Description
	}
	if input.Preview != nil {
		lesson.Preview = input.Preview
	}
	if input.VideoURL != nil {
		lesson.VideoURL = input.VideoURL
	}
	if input.Content != nil {
		lesson.Content = *input.Content
	}

	if err := s.repo.Update(ctx, lesson); err != nil {
		return nil, fmt.Errorf("update lesson: %w", err)
	}
	s.invalidateModule(ctx, previousModule)
	s.invalidateModule(ctx, lesson.ModuleID)
	return lesson, nil
}

// Delete removes a lesson. Moderators may not delete.
func (s *lessonService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find lesson: %w", err)
	}
	if err := authz.CanDeleteContent(actor, lesson.OwnerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}
	s.invalidateModule(ctx, lesson.ModuleID)
	return nil
}
