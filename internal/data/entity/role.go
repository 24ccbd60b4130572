package entity

// Role tags which identity store a row belongs to and which
// authorization applies downstream.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
	RoleEmployee
)

// ParseRole maps the stored role column onto a Role. Anything that is not
// admin or employee is treated as an end user.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "employee":
		return RoleEmployee
	default:
		return RoleUser
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleEmployee:
		return "employee"
	default:
		return "user"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
