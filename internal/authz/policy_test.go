package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "edumodules/internal/errors"
)

func uintPtr(v uint) *uint {
	return &v
}

var (
	owner     = Actor{ID: 1}
	other     = Actor{ID: 2}
	moderator = Actor{ID: 3, IsModerator: true}
	superuser = Actor{ID: 4, IsSuperuser: true}
)

func TestCanCreateContent(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		denied  bool
		message string
	}{
		{name: "regular user can create", actor: owner},
		{name: "superuser can create", actor: superuser},
		{name: "moderator cannot create", actor: moderator, denied: true, message: MsgModeratorCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCreateContent(tt.actor)
			if tt.denied {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.message)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanViewContent(t *testing.T) {
	ownerID := uintPtr(1)

	tests := []struct {
		name    string
		actor   Actor
		ownerID *uint
		denied  bool
	}{
		{name: "owner may view", actor: owner, ownerID: ownerID},
		{name: "moderator may view", actor: moderator, ownerID: ownerID},
		{name: "superuser may view", actor: superuser, ownerID: ownerID},
		{name: "stranger denied", actor: other, ownerID: ownerID, denied: true},
		{name: "orphaned record denied to regular user", actor: other, ownerID: nil, denied: true},
		{name: "orphaned record visible to moderator", actor: moderator, ownerID: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanViewContent(tt.actor, tt.ownerID)
			if tt.denied {
				assert.EqualError(t, err, MsgNotOwner)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanDeleteContent(t *testing.T) {
	ownerID := uintPtr(1)

	tests := []struct {
		name    string
		actor   Actor
		denied  bool
	}{
		{name: "owner may delete", actor: owner},
		{name: "superuser may delete", actor: superuser},
		{name: "moderator denied", actor: moderator, denied: true},
		{name: "stranger denied", actor: other, denied: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanDeleteContent(tt.actor, ownerID)
			if tt.denied {
				assert.EqualError(t, err, MsgNotOwner)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserPolicies(t *testing.T) {
	t.Run("list users", func(t *testing.T) {
		assert.NoError(t, CanListUsers(moderator))
		assert.NoError(t, CanListUsers(superuser))
		assert.EqualError(t, CanListUsers(owner), MsgNotModerator)
	})

	t.Run("view user", func(t *testing.T) {
		assert.NoError(t, CanViewUser(owner, owner.ID))
		assert.NoError(t, CanViewUser(moderator, owner.ID))
		assert.NoError(t, CanViewUser(superuser, owner.ID))
		assert.EqualError(t, CanViewUser(other, owner.ID), MsgNotProfileOwner)
	})

	t.Run("update user", func(t *testing.T) {
		assert.NoError(t, CanUpdateUser(owner, owner.ID))
		assert.NoError(t, CanUpdateUser(superuser, owner.ID))
		assert.EqualError(t, CanUpdateUser(moderator, owner.ID), MsgNotProfileOwner)
		assert.EqualError(t, CanUpdateUser(other, owner.ID), MsgNotProfileOwner)
	})

	t.Run("delete user", func(t *testing.T) {
		assert.NoError(t, CanDeleteUser(superuser))
		assert.EqualError(t, CanDeleteUser(moderator), MsgNotSuperuser)
		assert.EqualError(t, CanDeleteUser(owner), MsgNotSuperuser)
	})
}

func TestListScope(t *testing.T) {
	assert.Nil(t, ListScope(moderator))
	assert.Nil(t, ListScope(superuser))

	scope := ListScope(owner)
	assert.NotNil(t, scope)
	assert.Equal(t, owner.ID, *scope)
}

func TestDenialIsDeniedError(t *testing.T) {
	err := CanCreateContent(moderator)

	var denied *apperrors.DeniedError
	assert.ErrorAs(t, err, &denied)
	assert.Equal(t, MsgModeratorCreate, denied.Reason)
}
