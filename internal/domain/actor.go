package domain

const (
	RoleAdmin      = "admin"
	RoleHeadSetter = "head_setter"
	RoleSetter     = "setter"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHeadSetter, RoleSetter:
		return true
	}
	return false
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanOverride reports whether a soft lock held by someone else may be ignored.
func (a Actor) CanOverride() bool {
	return a.Role == RoleHeadSetter || a.Role == RoleAdmin
}

// CanManage reports whether the actor may approve time off and edit walls.
func (a Actor) CanManage() bool {
	return a.Role == RoleHeadSetter || a.Role == RoleAdmin
}
