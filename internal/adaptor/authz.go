package adaptor

import (
	"context"

	"todo-app/internal/data/entity"
	"todo-app/pkg/utils"

	"github.com/google/uuid"
)

// principal is the authenticated caller bound into the request context by the
// session middleware.
type principal struct {
	ID   uuid.UUID
	Role string
}

func principalFrom(ctx context.Context) (principal, bool) {
	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return principal{}, false
	}

	role, ok := utils.GetRoleFromContext(ctx)
	if !ok {
		return principal{}, false
	}

	return principal{ID: id, Role: role}, true
}

func (p principal) isAdmin() bool {
	return p.Role == string(entity.RoleAdmin)
}

// canAccess applies the self-or-admin rule: admins bypass the ownership
// check, everyone else must own the resource.
func (p principal) canAccess(ownerID uuid.UUID) bool {
	return p.isAdmin() || p.ID == ownerID
}
