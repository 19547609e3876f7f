package model

import domainErrors "github.com/mvoronin/userhub/internal/domain/errors"

// Role is the coarse authorization tag assigned to every user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCommon Role = "common"
)

// ParseRole validates a role value received at the boundary.
// Unknown values are rejected instead of being stored as-is.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCommon:
		return RoleCommon, nil
	default:
		return "", domainErrors.ErrInvalidRole
	}
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCommon
}

func (r Role) String() string {
	return string(r)
}
