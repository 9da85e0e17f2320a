package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edumodules/internal/authz"
	"edumodules/internal/cache"
	apperrors "edumodules/internal/errors"
	"edumodules/internal/model"
	"edumodules/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     *string
	Country   *string
	Avatar    *string
}

// UserInput carries updatable profile fields. Nil means the field was
// absent from the payload.
type UserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Phone     *string
	Country   *string
	Avatar    *string
}

// UserService exposes account operations. Registration is open; every
// other operation consults the authorization policy.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	List(ctx context.Context, actor authz.Actor) ([]model.User, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*model.User, error)
	Update(ctx context.Context, actor authz.Actor, id uint, input UserInput) (*model.User, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Register creates an account with a hashed password. It needs no actor:
// registration is the one unauthenticated operation.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Country:      input.Country,
		Avatar:       input.Avatar,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// List returns all accounts; moderators and superusers only.
func (s *userService) List(ctx context.Context, actor authz.Actor) ([]model.User, error) {
	if err := authz.CanListUsers(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, actor authz.Actor, id uint) (*model.User, error) {
	if err := authz.CanViewUser(actor, id); err != nil {
		return nil, err
	}

	var cached model.User
	if s.cache.GetJSON(ctx, userCacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	s.cache.SetJSON(ctx, userCacheKey(id), user, userCacheTTL)
	return user, nil
}

// Update modifies a profile; only the profile owner and superusers may.
func (s *userService) Update(ctx context.Context, actor authz.Actor, id uint, input UserInput) (*model.User, error) {
	if err := authz.CanUpdateUser(actor, id); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Country != nil {
		user.Country = input.Country
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(id))
	return user, nil
}

// Delete removes an account; superusers only. Owned modules and lessons
// survive with a null owner.
func (s *userService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	if err := authz.CanDeleteUser(actor); err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(id))
	return nil
}
