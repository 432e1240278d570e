package infra

import (
	"errors"
	"log/slog"

	"venue-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs once and classifies the error. An explicit kind wins over
// the one derived from the PostgreSQL error code.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	if k == KindNotFound || k == KindConflict {
		slog.Debug("Repository error: "+msg, logArgs...)
	} else {
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return KindDuplicateKey
		case pgErrForeignKeyViolation:
			return KindForeignKeyViolated
		case pgErrExclusionViolation:
			return KindConflict
		}
	}
	return KindDBFailure
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrExclusionViolation  = "23P01"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
