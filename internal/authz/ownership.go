package authz

import (
	apperrors "edumodules/internal/errors"
	"edumodules/internal/model"
)

// Ownership validation messages.
const (
	MsgNotAModule    = "The passed value is not a module."
	MsgModuleNoOwner = "The module does not have an owner attribute."
	MsgNotYourModule = "You can't create lessons for other people's modules!"
)

// ValidateModuleOwner checks that a lesson may be attached to the given
// module: the module must exist, carry a well-formed owner reference and
// be owned by the actor. Superusers bypass the ownership comparison but
// still cannot reference a missing or orphaned module.
//
// On success the module is returned unchanged.
func ValidateModuleOwner(m *model.Module, actor Actor) (*model.Module, error) {
	if m == nil {
		return nil, apperrors.Invalid(MsgNotAModule)
	}
	if m.OwnerID == nil {
		return nil, apperrors.Invalid(MsgModuleNoOwner)
	}
	if actor.IsSuperuser {
		return m, nil
	}
	if *m.OwnerID != actor.ID {
		return nil, apperrors.Invalid(MsgNotYourModule)
	}
	return m, nil
}
