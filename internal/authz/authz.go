// Package authz holds the role checks that gate route groups.
package authz

import (
	"github.com/campusbridge/campus-bridge/internal/domain"
	"github.com/campusbridge/campus-bridge/internal/platform/ctxutil"
)

type Reason string

const (
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonWrongRole       Reason = "wrong_role"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func Allow() Decision { return Decision{Allowed: true} }

func Deny(reason Reason) Decision { return Decision{Reason: reason} }

// RequireRole allows only a present identity whose role equals role.
func RequireRole(id *ctxutil.Identity, role domain.Role) Decision {
	if id == nil {
		return Deny(ReasonUnauthenticated)
	}
	if id.Role != role {
		return Deny(ReasonWrongRole)
	}
	return Allow()
}

func RequireStudent(id *ctxutil.Identity) Decision {
	return RequireRole(id, domain.RoleStudent)
}
