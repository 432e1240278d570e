package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account in the directory. Customers book, hall owners list
// venues, admins moderate.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	fullName     string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, fullName string) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) > MaxFullNameLength {
		return nil, ErrFullNameTooLong
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		fullName:     fullName,
		isActive:     true,
	}, nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) FullName() string      { return u.fullName }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) Actor() Actor {
	return Actor{ID: u.id, Role: u.role}
}
