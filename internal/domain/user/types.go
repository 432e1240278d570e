package user

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleHallOwner Role = "hall_owner"
	RoleAdmin     Role = "admin"
)

var roleLevels = map[Role]int{
	RoleCustomer:  1,
	RoleHallOwner: 2,
	RoleAdmin:     3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never pass.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	want, wantOK := roleLevels[min]
	return ok && wantOK && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
