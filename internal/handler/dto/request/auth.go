package request

import (
	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RegisterRequest signs up a customer or hall owner. Admin accounts are
// provisioned out of band.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=255"`
	Role     string `json:"role" binding:"omitempty,oneof=customer hall_owner"`
}

func (r *RegisterRequest) ToDomain() (auth.Credentials, user.Role, error) {
	creds, err := auth.NewCredentials(r.Email, r.Password)
	if err != nil {
		return auth.Credentials{}, "", err
	}
	if r.Role == "" {
		return creds, user.RoleCustomer, nil
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return auth.Credentials{}, "", err
	}
	if role == user.RoleAdmin {
		return auth.Credentials{}, "", user.ErrInvalidRole
	}
	return creds, role, nil
}
