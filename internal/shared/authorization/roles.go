package authorization

type UserRole string

const (
	RoleOwner UserRole = "owner"
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleOwner || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleAgent
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleOwner
}
