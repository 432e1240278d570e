package usecase

import (
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/jwt"
)

// TokenValidator provides access token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts access tokens only; a refresh token presented as a
// bearer credential is rejected.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.ValidateTokenOfType(tokenString, jwt.TokenTypeAccess)
	if err != nil {
		return user.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, err
	}

	return user.Actor{ID: claims.UserID, Role: role}, nil
}
