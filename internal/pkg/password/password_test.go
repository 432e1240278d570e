//go:build unit

package password_test

import (
	"strings"
	"testing"

	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("s3cret-hall-owner")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-hall-owner", hash)

	assert.NoError(t, password.ComparePassword(hash, "s3cret-hall-owner"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
}

func TestHashPassword_Invalid(t *testing.T) {
	for name, pw := range map[string]string{
		"empty":    "",
		"too long": strings.Repeat("x", 73),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := password.HashPassword(pw)
			assert.ErrorIs(t, err, password.ErrInvalidPassword)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}
