package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"edumodules/internal/authz"
	apperrors "edumodules/internal/errors"
	"edumodules/internal/model"
)

func TestModuleService_Create(t *testing.T) {
	tests := []struct {
		name      string
		actor     authz.Actor
		setupMock func(*MockModuleRepository)
		wantErr   string
	}{
		{
			name:  "regular user creates and is stamped as owner",
			actor: authz.Actor{ID: 7},
			setupMock: func(m *MockModuleRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Module")).Return(nil)
			},
		},
		{
			name:    "moderator denied regardless of payload",
			actor:   authz.Actor{ID: 8, IsModerator: true},
			wantErr: authz.MsgModeratorCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockModuleRepository)
			if tt.setupMock != nil {
				tt.setupMock(mockRepo)
			}

			svc := NewModuleService(mockRepo, nil)
			module := &model.Module{Title: "Go basics", Description: "intro"}
			created, err := svc.Create(context.Background(), tt.actor, module)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created.OwnerID)
				assert.Equal(t, tt.actor.ID, *created.OwnerID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestModuleService_Get(t *testing.T) {
	stored := &model.Module{ID: 5, Title: "Go basics", OwnerID: uintPtr(1)}

	tests := []struct {
		name      string
		actor     authz.Actor
		setupMock func(*MockModuleRepository)
		wantErr   string
		notFound  bool
	}{
		{
			name:  "owner retrieves",
			actor: authz.Actor{ID: 1},
			setupMock: func(m *MockModuleRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
			},
		},
		{
			name:  "moderator retrieves",
			actor: authz.Actor{ID: 2, IsModerator: true},
			setupMock: func(m *MockModuleRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
			},
		},
		{
			name:  "superuser retrieves full record including owner",
			actor: authz.Actor{ID: 3, IsSuperuser: true},
			setupMock: func(m *MockModuleRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
			},
		},
		{
			name:  "non-owner denied",
			actor: authz.Actor{ID: 9},
			setupMock: func(m *MockModuleRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
			},
			wantErr: authz.MsgNotOwner,
		},
		{
			name:  "unknown id yields not found",
			actor: authz.Actor{ID: 1},
			setupMock: func(m *MockModuleRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockModuleRepository)
			tt.setupMock(mockRepo)

			svc := NewModuleService(mockRepo, nil)
			module, err := svc.Get(context.Background(), tt.actor, 5)

			switch {
			case tt.wantErr != "":
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, module)
			case tt.notFound:
				assert.ErrorIs(t, err, apperrors.ErrNotFound)
			default:
				assert.NoError(t, err)
				assert.Equal(t, stored.Title, module.Title)
				assert.Equal(t, stored.OwnerID, module.OwnerID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestModuleService_RoundTrip(t *testing.T) {
	// Creating a module then retrieving it returns identical field values
	// except the server-assigned pk and owner stamp.
	actor := authz.Actor{ID: 4}
	mockRepo := new(MockModuleRepository)

	var saved *model.Module
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Module")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Module)
			saved.ID = 42
		}).Return(nil)
	mockRepo.On("FindByID", mock.Anything, uint(42)).
		Return(&model.Module{ID: 42, Title: "Concurrency", Description: "channels", OwnerID: uintPtr(4)}, nil)

	svc := NewModuleService(mockRepo, nil)

	created, err := svc.Create(context.Background(), actor, &model.Module{Title: "Concurrency", Description: "channels"})
	assert.NoError(t, err)

	got, err := svc.Get(context.Background(), actor, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, actor.ID, *got.OwnerID)
}

func TestModuleService_List_Scoping(t *testing.T) {
	tests := []struct {
		name      string
		actor     authz.Actor
		wantScope *uint
	}{
		{name: "regular user sees only own records", actor: authz.Actor{ID: 6}, wantScope: uintPtr(6)},
		{name: "moderator sees all", actor: authz.Actor{ID: 7, IsModerator: true}, wantScope: nil},
		{name: "superuser sees all", actor: authz.Actor{ID: 8, IsSuperuser: true}, wantScope: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockModuleRepository)
			mockRepo.On("List", mock.Anything, tt.wantScope, "", 0, defaultPageSize).
				Return([]model.Module{{ID: 1, Title: "A"}}, int64(1), nil)

			svc := NewModuleService(mockRepo, nil)
			page, err := svc.List(context.Background(), tt.actor, ListParams{})

			assert.NoError(t, err)
			assert.Equal(t, int64(1), page.Count)
			assert.Len(t, page.Results, 1)
			assert.Nil(t, page.Next)
			assert.Nil(t, page.Previous)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestModuleService_List_Pagination(t *testing.T) {
	mockRepo := new(MockModuleRepository)
	// Page 2 of 45 records at page size 20 (clamped from 50).
	mockRepo.On("List", mock.Anything, (*uint)(nil), "go", 20, 20).
		Return(make([]model.Module, 20), int64(45), nil)

	svc := NewModuleService(mockRepo, nil)
	actor := authz.Actor{ID: 1, IsSuperuser: true}
	page, err := svc.List(context.Background(), actor, ListParams{Page: 2, PageSize: 50, Search: "go"})

	assert.NoError(t, err)
	assert.Equal(t, int64(45), page.Count)
	assert.NotNil(t, page.Next)
	assert.Equal(t, 3, *page.Next)
	assert.NotNil(t, page.Previous)
	assert.Equal(t, 1, *page.Previous)
}

func TestModuleService_Delete(t *testing.T) {
	stored := &model.Module{ID: 5, OwnerID: uintPtr(1)}

	tests := []struct {
		name      string
		actor     authz.Actor
		setupMock func(*MockModuleRepository)
		wantErr   string
	}{
		{
			name:  "owner deletes",
			actor: authz.Actor{ID: 1},
			setupMock: func(m *MockModuleRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
				m.On("Delete", mock.Anything, uint(5)).Return(nil)
			},
		},
		{
			name:  "superuser deletes",
			actor: authz.Actor{ID: 2, IsSuperuser: true},
			setupMock: func(m *MockModuleRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
				m.On("Delete", mock.Anything, uint(5)).Return(nil)
			},
		},
		{
			name:  "moderator cannot delete",
			actor: authz.Actor{ID: 3, IsModerator: true},
			setupMock: func(m *MockModuleRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
			},
			wantErr: authz.MsgNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockModuleRepository)
			tt.setupMock(mockRepo)

			svc := NewModuleService(mockRepo, nil)
			err := svc.Delete(context.Background(), tt.actor, 5)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
