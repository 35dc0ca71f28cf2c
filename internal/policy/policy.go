// Package policy decides which actor may perform which action on which resource.
package policy

import (
	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
)

// Action names a guarded operation.
type Action string

const (
	RespondToRequest  Action = "respond_to_request"
	ApproveUser       Action = "approve_user"
	ListPendingUsers  Action = "list_pending_users"
	ViewPlatformStats Action = "view_platform_stats"
	CreateEvent       Action = "create_event"
	ModifyEvent       Action = "modify_event"
	ModifyJob         Action = "modify_job"
	SelfRegister      Action = "self_register"

	ManageInstitutions   Action = "manage_institutions"
	ViewInstitutionStats Action = "view_institution_stats"
)

// Authorize returns nil when actor may perform action on resource and
// errors.ErrPermissionDenied otherwise. The expected resource type depends on
// the action:
//
//	RespondToRequest   *model.MentorshipRequest
//	ApproveUser        *model.User (the user to approve)
//	ModifyEvent        *model.Event
//	ModifyJob          *model.Job
//	SelfRegister       model.Role (actor may be nil)
//
// ManageInstitutions and ViewPlatformStats need a super admin;
// ViewInstitutionStats needs an institution admin linked to an institution.
//
// Other actions ignore resource. A resource of the wrong type is denied.
func Authorize(actor *model.User, action Action, resource any) error {
	if Allowed(actor, action, resource) {
		return nil
	}
	return errors.ErrPermissionDenied
}

// Allowed is Authorize as a boolean.
func Allowed(actor *model.User, action Action, resource any) bool {
	if action == SelfRegister {
		role, ok := resource.(model.Role)
		return ok && (role == model.RoleStudent || role == model.RoleAlumni)
	}
	if actor == nil {
		return false
	}

	switch action {
	case RespondToRequest:
		req, ok := resource.(*model.MentorshipRequest)
		return ok && req != nil && req.MentorID == actor.ID
	case ListPendingUsers:
		return isAdmin(actor.Role)
	case ApproveUser:
		target, ok := resource.(*model.User)
		return ok && target != nil && canApprove(actor, target)
	case ViewPlatformStats, ManageInstitutions:
		return actor.Role == model.RoleSuperAdmin
	case ViewInstitutionStats:
		return actor.Role == model.RoleInstitutionAdmin && model.InstitutionOf(actor) != 0
	case CreateEvent:
		return actor.Role != model.RoleStudent
	case ModifyEvent:
		event, ok := resource.(*model.Event)
		return ok && event != nil && (event.OrganizerID == actor.ID || actor.Role == model.RoleSuperAdmin)
	case ModifyJob:
		job, ok := resource.(*model.Job)
		return ok && job != nil && (job.PostedByID == actor.ID || actor.Role == model.RoleSuperAdmin)
	}
	return false
}

// PendingScope restricts which unapproved users an admin may see.
// Zero fields do not filter.
type PendingScope struct {
	InstitutionID uint
	Department    string
}

// ScopeFor returns the pending-user scope of an admin actor. ok is false for
// non-admins and for scoped admins whose profile names no institution.
func ScopeFor(actor *model.User) (scope PendingScope, ok bool) {
	if actor == nil {
		return PendingScope{}, false
	}
	institution := model.InstitutionOf(actor)
	switch actor.Role {
	case model.RoleSuperAdmin:
		return PendingScope{}, true
	case model.RoleInstitutionAdmin:
		return PendingScope{InstitutionID: institution}, institution != 0
	case model.RoleDepartmentAdmin:
		return PendingScope{InstitutionID: institution, Department: departmentOf(actor)}, institution != 0
	}
	return PendingScope{}, false
}

// Contains reports whether u falls inside the scope.
func (s PendingScope) Contains(u *model.User) bool {
	if s.InstitutionID != 0 && model.InstitutionOf(u) != s.InstitutionID {
		return false
	}
	if s.Department != "" && departmentOf(u) != s.Department {
		return false
	}
	return true
}

func canApprove(actor, target *model.User) bool {
	scope, ok := ScopeFor(actor)
	return ok && scope.Contains(target)
}

func isAdmin(role model.Role) bool {
	switch role {
	case model.RoleSuperAdmin, model.RoleInstitutionAdmin, model.RoleDepartmentAdmin:
		return true
	}
	return false
}

func departmentOf(u *model.User) string {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Department
}
