package service

import (
	"fmt"
	"slices"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
)

// Identity is the caller resolved from a bearer token. Role is the role
// persisted for the user at the time of the request.
type Identity struct {
	UserID    uint       `json:"user_id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	ProfileID uint       `json:"profile_id"`
}

// RequireRole fails with domain.ErrUnauthorized unless the identity holds one
// of roles.
func RequireRole(id *Identity, roles ...model.Role) error {
	if id == nil {
		return domain.ErrUnauthenticated
	}
	if !slices.Contains(roles, id.Role) {
		return fmt.Errorf("%w: role %s not allowed", domain.ErrUnauthorized, id.Role)
	}
	return nil
}
