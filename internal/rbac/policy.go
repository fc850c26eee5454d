package rbac

import "github.com/SirTuppy/route-setter-scheduler/internal/domain"

type Permission struct {
	Resource string
	Action   string
}

// RoleParents lists which role each role inherits from.
var RoleParents = map[string]string{
	domain.RoleHeadSetter: domain.RoleSetter,
	domain.RoleAdmin:      domain.RoleHeadSetter,
}

// DefaultPolicy holds the permissions each role adds on top of its parent.
var DefaultPolicy = map[string][]Permission{
	domain.RoleSetter: {
		{"schedule", "read"},
		{"gym", "read"},
		{"wall", "read"},
		{"user", "read"},
		{"crew", "read"},
		{"presence", "write"},
		{"timeoff", "read"},
		{"timeoff", "create"},
		{"export", "read"},
	},
	domain.RoleHeadSetter: {
		{"schedule", "write"},
		{"schedule", "clear"},
		{"wall", "write"},
		{"timeoff", "approve"},
		{"crew", "update"},
		{"yellow_page", "read"},
	},
	domain.RoleAdmin: {
		{"gym", "write"},
		{"user", "update"},
		{"crew", "write"},
		{"rbac", "read"},
	},
}
