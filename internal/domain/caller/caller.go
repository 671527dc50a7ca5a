package caller

import "strings"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleTenant   Role = "TENANT"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole normalises a role claim. "USER" is accepted as the legacy name
// for customers.
func ParseRole(s string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CUSTOMER", "USER":
		return RoleCustomer, true
	case "TENANT":
		return RoleTenant, true
	case "ADMIN":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Caller is the pre-authenticated identity every operation runs as.
type Caller struct {
	Role   Role
	Domain string
	Email  string
}

func (c Caller) IsCustomer() bool { return c.Role == RoleCustomer }

func (c Caller) IsTenant() bool { return c.Role == RoleTenant }
