// Package authz implements the ownership and role based authorization
// policy for modules, lessons and users.
//
// Three roles exist: the owner of a record, moderators (broad read/update
// access but barred from creating content) and superusers (unrestricted).
// Every rule is an OR of role predicates; a denial carries the message of
// the most specific predicate that failed.
package authz

import apperrors "edumodules/internal/errors"

// Actor is the authenticated identity an operation runs as. Role flags are
// resolved from the user record at request time, not from token claims.
type Actor struct {
	ID          uint
	IsModerator bool
	IsSuperuser bool
}

// Denial messages, surfaced verbatim in 403 responses.
const (
	MsgNotModerator    = "You are not a moderator!"
	MsgModeratorCreate = "Moderators cannot create lessons or modules!"
	MsgNotSuperuser    = "You are not a superuser!"
	MsgNotOwner        = "You are not the owner!"
	MsgNotProfileOwner = "You are not the owner of this profile!"
)

// Owns reports whether the actor owns a record with the given owner
// reference. A record with no owner bound is owned by nobody.
func (a Actor) Owns(ownerID *uint) bool {
	return ownerID != nil && *ownerID == a.ID
}

// CanCreateContent allows module and lesson creation for everyone except
// moderators.
func CanCreateContent(a Actor) error {
	if a.IsModerator {
		return apperrors.Denied(MsgModeratorCreate)
	}
	return nil
}

// CanViewContent allows module and lesson retrieve/update for the owner,
// moderators and superusers.
func CanViewContent(a Actor, ownerID *uint) error {
	if a.Owns(ownerID) || a.IsModerator || a.IsSuperuser {
		return nil
	}
	return apperrors.Denied(MsgNotOwner)
}

// CanDeleteContent allows module and lesson deletion for the owner and
// superusers only. Moderators may read and update but never delete.
func CanDeleteContent(a Actor, ownerID *uint) error {
	if a.Owns(ownerID) || a.IsSuperuser {
		return nil
	}
	return apperrors.Denied(MsgNotOwner)
}

// CanListUsers allows listing user accounts for moderators and superusers.
func CanListUsers(a Actor) error {
	if a.IsModerator || a.IsSuperuser {
		return nil
	}
	return apperrors.Denied(MsgNotModerator)
}

// CanViewUser allows profile retrieval for the profile owner, moderators
// and superusers.
func CanViewUser(a Actor, targetID uint) error {
	if a.ID == targetID || a.IsModerator || a.IsSuperuser {
		return nil
	}
	return apperrors.Denied(MsgNotProfileOwner)
}

// CanUpdateUser allows profile updates for the profile owner and
// superusers.
func CanUpdateUser(a Actor, targetID uint) error {
	if a.ID == targetID || a.IsSuperuser {
		return nil
	}
	return apperrors.Denied(MsgNotProfileOwner)
}

// CanDeleteUser allows account deletion for superusers only.
func CanDeleteUser(a Actor) error {
	if a.IsSuperuser {
		return nil
	}
	return apperrors.Denied(MsgNotSuperuser)
}

// ListScope returns the owner filter for content list queries: moderators
// and superusers see everything, everyone else sees only their own records.
// List access never denies, it narrows.
func ListScope(a Actor) *uint {
	if a.IsModerator || a.IsSuperuser {
		return nil
	}
	id := a.ID
	return &id
}
