// Package entity holds the café domain objects and the rules that need no storage.
package entity

import "slices"

// Role is the single role stored on a staff account.
type Role string

const (
	RoleAdmin     Role = "admin"     // menu, stock, team and pre-orders
	RoleVolunteer Role = "volunteer" // sales for assigned items
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleVolunteer
}

// Grants expands a stored role into the roles carried in access tokens.
// Admins may use every volunteer screen.
func (r Role) Grants() Roles {
	if r == RoleAdmin {
		return Roles{RoleAdmin, RoleVolunteer}
	}

	return Roles{r}
}

// Roles is the role set of an authenticated caller.
type Roles []Role

// ParseRoles reads token claims, dropping names it does not know.
func ParseRoles(names []string) Roles {
	roles := make(Roles, 0, len(names))
	for _, name := range names {
		if role := Role(name); role.IsValid() {
			roles = append(roles, role)
		}
	}

	return roles
}

// Allows reports whether the set holds at least one of want.
func (rs Roles) Allows(want ...Role) bool {
	return slices.ContainsFunc(want, func(r Role) bool {
		return slices.Contains(rs, r)
	})
}

// Strings is the claim form of the set.
func (rs Roles) Strings() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = string(r)
	}

	return names
}
