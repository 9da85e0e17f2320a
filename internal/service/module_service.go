package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"edumodules/internal/authz"
	"edumodules/internal/cache"
	apperrors "edumodules/internal/errors"
	"edumodules/internal/model"
	"edumodules/internal/repository"
)

const moduleCacheTTL = 5 * time.Minute

// ModuleInput carries updatable module fields. Nil means the field was
// absent from the payload.
type ModuleInput struct {
	Title       *string
	Description *string
	Preview     *string
}

// ModuleList is the paginated list envelope for modules.
type ModuleList struct {
	Count    int64          `json:"count"`
	Next     *int           `json:"next"`
	Previous *int           `json:"previous"`
	Results  []model.Module `json:"results"`
}

// ModuleService exposes module CRUD, each operation consulting the
// authorization policy before touching the store.
type ModuleService interface {
	Create(ctx context.Context, actor authz.Actor, module *model.Module) (*model.Module, error)
	List(ctx context.Context, actor authz.Actor, params ListParams) (*ModuleList, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*model.Module, error)
	Update(ctx context.Context, actor authz.Actor, id uint, input ModuleInput) (*model.Module, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type moduleService struct {
	repo  repository.ModuleRepository
	cache *cache.Client
}

// NewModuleService builds a ModuleService with repository and cache.
func NewModuleService(repo repository.ModuleRepository, cache *cache.Client) ModuleService {
	return &moduleService{repo: repo, cache: cache}
}

func moduleCacheKey(id uint) string {
	return fmt.Sprintf("module:%d", id)
}

// Create stamps the module's owner with the acting identity. Moderators
// cannot create content.
func (s *moduleService) Create(ctx context.Context, actor authz.Actor, module *model.Module) (*model.Module, error) {
	if err := authz.CanCreateContent(actor); err != nil {
		return nil, err
	}

	ownerID := actor.ID
	module.OwnerID = &ownerID
	if err := s.repo.Create(ctx, module); err != nil {
		return nil, fmt.Errorf("create module: %w", err)
	}
	module.LessonsCount = len(module.Lessons)
	return module, nil
}

// List returns the modules visible to the actor: everything for
// moderators and superusers, only their own records for everyone else.
func (s *moduleService) List(ctx context.Context, actor authz.Actor, params ListParams) (*ModuleList, error) {
	page, size, offset := params.normalize()

	modules, count, err := s.repo.List(ctx, authz.ListScope(actor), params.Search, offset, size)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	for i := range modules {
		modules[i].LessonsCount = len(modules[i].Lessons)
	}

	next, previous := pageLinks(page, size, count)
	return &ModuleList{Count: count, Next: next, Previous: previous, Results: modules}, nil
}

func (s *moduleService) Get(ctx context.Context, actor authz.Actor, id uint) (*model.Module, error) {
	var cached model.Module
	if s.cache.GetJSON(ctx, moduleCacheKey(id), &cached) {
		if err := authz.CanViewContent(actor, cached.OwnerID); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find module: %w", err)
	}
	if err := authz.CanViewContent(actor, module.OwnerID); err != nil {
		return nil, err
	}

	module.LessonsCount = len(module.Lessons)
	s.cache.SetJSON(ctx, moduleCacheKey(id), module, moduleCacheTTL)
	return module, nil
}

func (s *moduleService) Update(ctx context.Context, actor authz.Actor, id uint, input ModuleInput) (*model.Module, error) {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find module: %w", err)
	}
	if err := authz.CanViewContent(actor, module.OwnerID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		module.Title = *input.Title
	}
	if input.Description != nil {
		module.Description = *input.Description
	}
	if input.Preview != nil {
		module.Preview = input.Preview
	}

	if err := s.repo.Update(ctx, module); err != nil {
		return nil, fmt.Errorf("update module: %w", err)
	}
	_ = s.cache.Delete(ctx, moduleCacheKey(id))

	module.LessonsCount = len(module.Lessons)
	return module, nil
}

// Delete removes a module and, through the store, every lesson attached
// to it. Moderators may not delete.
func (s *moduleService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find module: %w", err)
	}
	if err := authz.CanDeleteContent(actor, module.OwnerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete module: %w", err)
	}
	_ = s.cache.Delete(ctx, moduleCacheKey(id))
	return nil
}
