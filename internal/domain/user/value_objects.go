package user

import (
	"regexp"
	"strings"

	"venue-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Sentinel("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.Sentinel("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.Sentinel("password must be at least 8 characters long", errs.ErrValidation)
	ErrFullNameTooLong = errs.Sentinel("full name is too long (max 255 characters)", errs.ErrValidation)
)

const MaxFullNameLength = 255

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
