package errs

import cr "github.com/cockroachdb/errors"

// Error kinds shared by every layer. Domain sentinels are marked with one
// of these so callers classify them without knowing the concrete sentinel.
var (
	ErrNotFound        = cr.New("resource not found")
	ErrConflict        = cr.New("conflicting state")
	ErrPolicyViolation = cr.New("business policy violated")
	ErrForbidden       = cr.New("operation not permitted for actor")
	ErrValidation      = cr.New("input validation failed")
)

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindPolicyViolation Kind = "policy_violation"
	KindForbidden       Kind = "forbidden"
	KindValidation      Kind = "validation"
	KindInternal        Kind = "internal"
)

var kindOrder = []struct {
	ref  error
	kind Kind
}{
	{ErrNotFound, KindNotFound},
	{ErrConflict, KindConflict},
	{ErrPolicyViolation, KindPolicyViolation},
	{ErrForbidden, KindForbidden},
	{ErrValidation, KindValidation},
}

// Sentinel builds a domain error already marked with its kind.
func Sentinel(msg string, kind error) error {
	return cr.Mark(cr.New(msg), kind)
}

// KindOf reports the taxonomy kind of err, KindInternal when unmarked.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindOrder {
		if cr.Is(err, k.ref) {
			return k.kind
		}
	}
	return KindInternal
}
