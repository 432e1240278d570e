package password

import (
	"venue-booking/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.Sentinel("invalid password", errs.ErrValidation)
)

const DefaultCost = bcrypt.DefaultCost

// bcrypt ignores everything past the 72nd byte.
const maxBytes = 72

func HashPassword(password string) (string, error) {
	if password == "" || len(password) > maxBytes {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if cr.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrComparisonFailed
	}
	return err
}
