package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusbridge/campus-bridge/internal/domain"
)

type identityKey struct{}

// Identity is the authenticated caller resolved by the session middleware.
type Identity struct {
	UserID    uuid.UUID
	Role      domain.Role
	FirstName string
	LastName  string
	TokenID   string
}

func (id *Identity) DisplayName() string {
	if id == nil {
		return ""
	}
	switch {
	case id.FirstName != "" && id.LastName != "":
		return id.FirstName + " " + id.LastName
	case id.FirstName != "":
		return id.FirstName
	default:
		return id.LastName
	}
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// GetIdentity returns nil for anonymous requests.
func GetIdentity(ctx context.Context) *Identity {
	if ctx == nil {
		return nil
	}
	if id, ok := ctx.Value(identityKey{}).(*Identity); ok && id != nil && id.UserID != uuid.Nil {
		return id
	}
	return nil
}
